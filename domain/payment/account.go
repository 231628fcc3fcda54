package payment

import (
	"github.com/escrownet/escrowd/domain/paymentmethod"
)

// Account is a payment account owned by the user. It is a closed sum type
// over the known payment-rail kinds; code that needs variant-specific data
// dispatches with a type switch over the concrete types below.
//
// Accounts are immutable once created. Changing an account's constraints
// means creating a new account.
type Account interface {
	// ID uniquely identifies the account. It is also the key under which
	// account-age witness data is looked up.
	ID() string

	// Method returns the payment method the account settles over.
	Method() paymentmethod.ID

	// account restricts implementations to this package, keeping the
	// variant set closed.
	account()
}

type accountBase struct {
	id     string
	method paymentmethod.ID
}

func (b *accountBase) ID() string               { return b.id }
func (b *accountBase) Method() paymentmethod.ID { return b.method }
func (b *accountBase) account()                 {}

// GenericAccount is an account on a rail with no geography or bank
// constraints, e.g. Revolut or Zelle.
type GenericAccount struct {
	accountBase
}

// NewGenericAccount returns an unconstrained account on the given method.
func NewGenericAccount(id string, method paymentmethod.ID) *GenericAccount {
	return &GenericAccount{accountBase{id: id, method: method}}
}

// CountryBasedAccount is an account on a country-scoped rail, e.g. a
// face-to-face or cash-deposit account. An empty Country means the account
// is not restricted to any country.
type CountryBasedAccount struct {
	accountBase
	Country string
}

// NewCountryBasedAccount returns a country-scoped account on the given method.
func NewCountryBasedAccount(id string, method paymentmethod.ID, country string) *CountryBasedAccount {
	return &CountryBasedAccount{accountBase{id: id, method: method}, country}
}

// SEPAAccount is a SEPA account. It accepts offers from the countries in
// AcceptedCountryCodes.
type SEPAAccount struct {
	accountBase
	Country              string
	AcceptedCountryCodes []string
}

// NewSEPAAccount returns a SEPA account.
func NewSEPAAccount(id, country string, acceptedCountryCodes []string) *SEPAAccount {
	return &SEPAAccount{accountBase{id: id, method: paymentmethod.SEPA}, country, acceptedCountryCodes}
}

// SEPAInstantAccount is a SEPA Instant account. It accepts offers from the
// countries in AcceptedCountryCodes.
type SEPAInstantAccount struct {
	accountBase
	Country              string
	AcceptedCountryCodes []string
}

// NewSEPAInstantAccount returns a SEPA Instant account.
func NewSEPAInstantAccount(id, country string, acceptedCountryCodes []string) *SEPAInstantAccount {
	return &SEPAInstantAccount{accountBase{id: id, method: paymentmethod.SEPAInstant}, country, acceptedCountryCodes}
}

// NationalBankAccount is a national bank transfer account. The account is
// scoped to a country but accepts transfers from any bank there.
type NationalBankAccount struct {
	accountBase
	Country string
	BankID  string
}

// NewNationalBankAccount returns a national bank transfer account.
func NewNationalBankAccount(id, country, bankID string) *NationalBankAccount {
	return &NationalBankAccount{accountBase{id: id, method: paymentmethod.NationalBank}, country, bankID}
}

// SameBankAccount is a bank transfer account pinned to a single bank: only
// counterparties at exactly that bank can be matched.
type SameBankAccount struct {
	accountBase
	Country string
	BankID  string
}

// NewSameBankAccount returns a same-bank transfer account.
func NewSameBankAccount(id, country, bankID string) *SameBankAccount {
	return &SameBankAccount{accountBase{id: id, method: paymentmethod.SameBank}, country, bankID}
}

// SpecificBanksAccount is a bank transfer account with a whitelist of
// accepted banks.
type SpecificBanksAccount struct {
	accountBase
	Country       string
	BankID        string
	AcceptedBanks []string
}

// NewSpecificBanksAccount returns a bank transfer account restricted to
// the given accepted banks.
func NewSpecificBanksAccount(id, country, bankID string, acceptedBanks []string) *SpecificBanksAccount {
	return &SpecificBanksAccount{accountBase{id: id, method: paymentmethod.SpecificBanks}, country, bankID, acceptedBanks}
}

// CryptoAccount is an altcoin account holding a receiving address on the
// altcoin's own chain.
type CryptoAccount struct {
	accountBase
	Address string
}

// NewCryptoAccount returns an altcoin account. Instant is true for the
// instant-settlement crypto rail.
func NewCryptoAccount(id, address string, instant bool) *CryptoAccount {
	method := paymentmethod.BlockChains
	if instant {
		method = paymentmethod.BlockChainsInstant
	}
	return &CryptoAccount{accountBase{id: id, method: method}, address}
}
