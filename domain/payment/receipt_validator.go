package payment

import (
	"github.com/escrownet/escrowd/domain/offer"
	"github.com/escrownet/escrowd/domain/paymentmethod"
)

// IsAccountValidForOffer returns whether the account can take the offer.
// The account's method must match the offer's method (the SEPA rail and its
// instant variant are mutually compatible), the account's method must
// support the offer's currency, and any geography or bank constraint the
// account variant carries must be satisfied by the offer.
//
// Missing optional data never fails a check: an offer with no country or
// bank is unconstrained, not invalid.
func IsAccountValidForOffer(o *offer.Offer, account Account) bool {
	if !isMatchingMethod(o, account) {
		return false
	}
	if !paymentmethod.SupportsCurrency(account.Method(), o.CurrencyCode) {
		return false
	}

	switch a := account.(type) {
	case *SEPAAccount:
		return isCountryAccepted(o, a.AcceptedCountryCodes)
	case *SEPAInstantAccount:
		return isCountryAccepted(o, a.AcceptedCountryCodes)
	case *NationalBankAccount:
		return isMatchingCountry(o, a.Country)
	case *SameBankAccount:
		return isMatchingCountry(o, a.Country) && isMatchingBank(o, a.BankID)
	case *SpecificBanksAccount:
		return isMatchingCountry(o, a.Country) && isBankAccepted(o, a.AcceptedBanks)
	case *CountryBasedAccount:
		return isMatchingCountry(o, a.Country)
	case *GenericAccount, *CryptoAccount:
		return true
	}
	return false
}

func isMatchingMethod(o *offer.Offer, account Account) bool {
	return account.Method() == o.Method ||
		paymentmethod.AreInterchangeable(account.Method(), o.Method)
}

// isMatchingCountry checks a single-country restriction. Either side
// without a country is unconstrained.
func isMatchingCountry(o *offer.Offer, country string) bool {
	if o.CountryCode == "" || country == "" {
		return true
	}
	return o.CountryCode == country
}

// isCountryAccepted checks a country-whitelist restriction against the
// offer's country, when the offer is country-scoped at all.
func isCountryAccepted(o *offer.Offer, acceptedCountryCodes []string) bool {
	if o.CountryCode == "" {
		return true
	}
	for _, code := range acceptedCountryCodes {
		if code == o.CountryCode {
			return true
		}
	}
	return false
}

// isMatchingBank checks an exact-bank restriction. An offer without a
// proposed bank is unconstrained.
func isMatchingBank(o *offer.Offer, bankID string) bool {
	if o.BankID == "" {
		return true
	}
	return o.BankID == bankID
}

// isBankAccepted checks a bank-whitelist restriction against the offer's
// proposed bank, when the offer proposes one at all.
func isBankAccepted(o *offer.Offer, acceptedBanks []string) bool {
	if o.BankID == "" {
		return true
	}
	for _, bank := range acceptedBanks {
		if bank == o.BankID {
			return true
		}
	}
	return false
}
