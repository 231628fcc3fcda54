package payment

import "github.com/escrownet/escrowd/domain/paymentmethod"

// AcceptedCountryCodes returns the country codes the account accepts
// counterparties from. A single-country account yields that country; an
// account without geography constraints yields nil.
func AcceptedCountryCodes(account Account) []string {
	switch a := account.(type) {
	case *SEPAAccount:
		return append([]string(nil), a.AcceptedCountryCodes...)
	case *SEPAInstantAccount:
		return append([]string(nil), a.AcceptedCountryCodes...)
	case *NationalBankAccount:
		return singleton(a.Country)
	case *SameBankAccount:
		return singleton(a.Country)
	case *SpecificBanksAccount:
		return singleton(a.Country)
	case *CountryBasedAccount:
		return singleton(a.Country)
	}
	return nil
}

// AcceptedBanks returns the bank IDs the account accepts counterparties
// from. A pinned-bank account yields that bank; an account without bank
// constraints yields nil.
func AcceptedBanks(account Account) []string {
	switch a := account.(type) {
	case *SpecificBanksAccount:
		return append([]string(nil), a.AcceptedBanks...)
	case *SameBankAccount:
		return singleton(a.BankID)
	}
	return nil
}

// BankID returns the account's own bank ID, or "" for variants without one.
func BankID(account Account) string {
	switch a := account.(type) {
	case *NationalBankAccount:
		return a.BankID
	case *SameBankAccount:
		return a.BankID
	case *SpecificBanksAccount:
		return a.BankID
	}
	return ""
}

// CountryCode returns the account's own country, or "" for variants
// without one (crypto rails and unconstrained rails).
func CountryCode(account Account) string {
	switch a := account.(type) {
	case *SEPAAccount:
		return a.Country
	case *SEPAInstantAccount:
		return a.Country
	case *NationalBankAccount:
		return a.Country
	case *SameBankAccount:
		return a.Country
	case *SpecificBanksAccount:
		return a.Country
	case *CountryBasedAccount:
		return a.Country
	}
	return ""
}

// IsCryptoCurrencyAccount returns whether the account settles over one of
// the crypto rails.
func IsCryptoCurrencyAccount(account Account) bool {
	return account != nil && paymentmethod.IsCryptoRail(account.Method())
}

func singleton(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
