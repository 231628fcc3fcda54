package paymentmethod

import (
	"reflect"
	"testing"
)

func TestSupportsCurrency(t *testing.T) {
	tests := []struct {
		method   ID
		currency string
		expected bool
	}{
		{SEPA, "EUR", true},
		{SEPA, "USD", false},
		{SEPAInstant, "EUR", true},
		{FasterPayments, "GBP", true},
		{FasterPayments, "EUR", false},
		{Swish, "SEK", true},
		{Zelle, "USD", true},
		{Zelle, "EUR", false},
		{NationalBank, "EUR", true},
		{NationalBank, "THB", true},
		{Swift, "ZAR", true},
		{BlockChains, "XMR", true},
		{BlockChains, "EUR", false},
		{"NO_SUCH_METHOD", "EUR", false},
	}
	for _, test := range tests {
		got := SupportsCurrency(test.method, test.currency)
		if got != test.expected {
			t.Errorf("SupportsCurrency(%s, %s): expected %t, got %t",
				test.method, test.currency, test.expected, got)
		}
	}
}

func TestTradeCurrenciesReturnsCopy(t *testing.T) {
	codes := TradeCurrencies(SEPA)
	if !reflect.DeepEqual(codes, []string{"EUR"}) {
		t.Fatalf("TradeCurrencies(SEPA): expected [EUR], got %v", codes)
	}
	codes[0] = "???"
	if TradeCurrencies(SEPA)[0] != "EUR" {
		t.Fatal("mutating the slice returned by TradeCurrencies changed the catalog")
	}
}

func TestMethodFamiliesShareCurrencySets(t *testing.T) {
	// The bank-transfer family all maps to the full fiat set.
	family := []ID{NationalBank, SameBank, SpecificBanks, CashDeposit, CashByMail, FaceToFace, Swift}
	expected := TradeCurrencies(NationalBank)
	for _, method := range family {
		if !reflect.DeepEqual(TradeCurrencies(method), expected) {
			t.Errorf("method %s: expected the shared bank-transfer currency set", method)
		}
	}
}

func TestTradeCurrenciesUnknownMethod(t *testing.T) {
	if codes := TradeCurrencies("NO_SUCH_METHOD"); codes != nil {
		t.Fatalf("expected nil for unknown method, got %v", codes)
	}
	if Exists("NO_SUCH_METHOD") {
		t.Fatal("Exists returned true for an unknown method")
	}
	if !Exists(Revolut) {
		t.Fatal("Exists returned false for a known method")
	}
}

func TestHasChargebackRisk(t *testing.T) {
	tests := []struct {
		method   ID
		currency string
		expected bool
	}{
		{SEPA, "EUR", true},
		{SEPAInstant, "EUR", true},
		{Zelle, "USD", true},
		{Revolut, "USD", true},
		{NationalBank, "EUR", true},

		// Risky method, but the currency is not served by it.
		{SEPA, "USD", false},
		{Zelle, "EUR", false},

		// Methods without chargeback risk.
		{FaceToFace, "EUR", false},
		{CashByMail, "USD", false},
		{MoneyGram, "USD", false},
		{BlockChains, "XMR", false},
	}
	for _, test := range tests {
		got := HasChargebackRisk(test.method, test.currency)
		if got != test.expected {
			t.Errorf("HasChargebackRisk(%s, %s): expected %t, got %t",
				test.method, test.currency, test.expected, got)
		}
	}
}

func TestAreInterchangeable(t *testing.T) {
	if !AreInterchangeable(SEPA, SEPAInstant) || !AreInterchangeable(SEPAInstant, SEPA) {
		t.Fatal("SEPA and SEPA Instant must be mutually interchangeable")
	}
	if AreInterchangeable(SEPA, SEPA) {
		t.Fatal("a method is not interchangeable with itself")
	}
	if AreInterchangeable(NationalBank, SameBank) {
		t.Fatal("the bank-transfer methods are not interchangeable")
	}
}

func TestIsCryptoRail(t *testing.T) {
	if !IsCryptoRail(BlockChains) || !IsCryptoRail(BlockChainsInstant) {
		t.Fatal("the crypto rails must be recognized")
	}
	if IsCryptoRail(SEPA) {
		t.Fatal("SEPA is not a crypto rail")
	}
}
