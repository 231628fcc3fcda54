package payment_test

import (
	"testing"

	"github.com/escrownet/escrowd/domain/offer"
	"github.com/escrownet/escrowd/domain/payment"
	"github.com/escrownet/escrowd/domain/paymentmethod"
)

func TestMethodMatch(t *testing.T) {
	tests := []struct {
		name     string
		offer    *offer.Offer
		account  payment.Account
		expected bool
	}{
		{
			name:     "same method",
			offer:    &offer.Offer{Method: paymentmethod.Revolut, CurrencyCode: "USD"},
			account:  payment.NewGenericAccount("r1", paymentmethod.Revolut),
			expected: true,
		},
		{
			name:     "different method",
			offer:    &offer.Offer{Method: paymentmethod.Zelle, CurrencyCode: "USD"},
			account:  payment.NewGenericAccount("r1", paymentmethod.Revolut),
			expected: false,
		},
		{
			name:     "sepa account takes sepa instant offer",
			offer:    &offer.Offer{Method: paymentmethod.SEPAInstant, CurrencyCode: "EUR"},
			account:  payment.NewSEPAAccount("s1", "DE", []string{"DE", "FR"}),
			expected: true,
		},
		{
			name:     "sepa instant account takes sepa offer",
			offer:    &offer.Offer{Method: paymentmethod.SEPA, CurrencyCode: "EUR"},
			account:  payment.NewSEPAInstantAccount("s2", "DE", []string{"DE", "FR"}),
			expected: true,
		},
		{
			name:     "currency not supported by the method",
			offer:    &offer.Offer{Method: paymentmethod.Swish, CurrencyCode: "EUR"},
			account:  payment.NewGenericAccount("sw1", paymentmethod.Swish),
			expected: false,
		},
	}
	for _, test := range tests {
		got := payment.IsAccountValidForOffer(test.offer, test.account)
		if got != test.expected {
			t.Errorf("%s: expected %t, got %t", test.name, test.expected, got)
		}
	}
}

func TestCountryConstraints(t *testing.T) {
	sepaAccount := payment.NewSEPAAccount("s1", "DE", []string{"DE", "FR"})
	f2fAccount := payment.NewCountryBasedAccount("f1", paymentmethod.FaceToFace, "DE")
	unconstrainedF2F := payment.NewCountryBasedAccount("f2", paymentmethod.FaceToFace, "")

	tests := []struct {
		name     string
		offer    *offer.Offer
		account  payment.Account
		expected bool
	}{
		{
			name:     "offer country in accepted list",
			offer:    &offer.Offer{Method: paymentmethod.SEPA, CurrencyCode: "EUR", CountryCode: "FR"},
			account:  sepaAccount,
			expected: true,
		},
		{
			name:     "offer country outside accepted list",
			offer:    &offer.Offer{Method: paymentmethod.SEPA, CurrencyCode: "EUR", CountryCode: "IT"},
			account:  sepaAccount,
			expected: false,
		},
		{
			name:     "offer without country is unconstrained",
			offer:    &offer.Offer{Method: paymentmethod.SEPA, CurrencyCode: "EUR"},
			account:  sepaAccount,
			expected: true,
		},
		{
			name:     "single country exact match",
			offer:    &offer.Offer{Method: paymentmethod.FaceToFace, CurrencyCode: "EUR", CountryCode: "DE"},
			account:  f2fAccount,
			expected: true,
		},
		{
			name:     "single country mismatch",
			offer:    &offer.Offer{Method: paymentmethod.FaceToFace, CurrencyCode: "EUR", CountryCode: "AT"},
			account:  f2fAccount,
			expected: false,
		},
		{
			name:     "account without country is unconstrained",
			offer:    &offer.Offer{Method: paymentmethod.FaceToFace, CurrencyCode: "EUR", CountryCode: "AT"},
			account:  unconstrainedF2F,
			expected: true,
		},
	}
	for _, test := range tests {
		got := payment.IsAccountValidForOffer(test.offer, test.account)
		if got != test.expected {
			t.Errorf("%s: expected %t, got %t", test.name, test.expected, got)
		}
	}
}

func TestBankConstraints(t *testing.T) {
	sameBank := payment.NewSameBankAccount("b1", "DE", "DEUTDEFF")
	specificBanks := payment.NewSpecificBanksAccount("b2", "DE", "DEUTDEFF",
		[]string{"DEUTDEFF", "COBADEFF"})
	nationalBank := payment.NewNationalBankAccount("b3", "DE", "DEUTDEFF")

	tests := []struct {
		name     string
		offer    *offer.Offer
		account  payment.Account
		expected bool
	}{
		{
			name:     "same bank exact match",
			offer:    &offer.Offer{Method: paymentmethod.SameBank, CurrencyCode: "EUR", BankID: "DEUTDEFF"},
			account:  sameBank,
			expected: true,
		},
		{
			name:     "same bank mismatch",
			offer:    &offer.Offer{Method: paymentmethod.SameBank, CurrencyCode: "EUR", BankID: "COBADEFF"},
			account:  sameBank,
			expected: false,
		},
		{
			name:     "offer without bank is unconstrained",
			offer:    &offer.Offer{Method: paymentmethod.SameBank, CurrencyCode: "EUR"},
			account:  sameBank,
			expected: true,
		},
		{
			name:     "bank in accepted list",
			offer:    &offer.Offer{Method: paymentmethod.SpecificBanks, CurrencyCode: "EUR", BankID: "COBADEFF"},
			account:  specificBanks,
			expected: true,
		},
		{
			name:     "bank outside accepted list",
			offer:    &offer.Offer{Method: paymentmethod.SpecificBanks, CurrencyCode: "EUR", BankID: "BELADEBE"},
			account:  specificBanks,
			expected: false,
		},
		{
			name:     "national bank ignores the offer bank",
			offer:    &offer.Offer{Method: paymentmethod.NationalBank, CurrencyCode: "EUR", BankID: "BELADEBE"},
			account:  nationalBank,
			expected: true,
		},
	}
	for _, test := range tests {
		got := payment.IsAccountValidForOffer(test.offer, test.account)
		if got != test.expected {
			t.Errorf("%s: expected %t, got %t", test.name, test.expected, got)
		}
	}
}
