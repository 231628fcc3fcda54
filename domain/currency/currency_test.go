package currency

import "testing"

func TestIsFiat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"EUR", true},
		{"USD", true},
		{"JPY", true},
		{"XMR", false},
		{"BTC", false},
		{"", false},
		{"eur", false},
	}
	for _, test := range tests {
		if got := IsFiat(test.code); got != test.expected {
			t.Errorf("IsFiat(%q): expected %t, got %t", test.code, test.expected, got)
		}
	}
}

func TestIsCrypto(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"XMR", true},
		{"LTC", true},
		{"EUR", false},
		{"BTC", false},
	}
	for _, test := range tests {
		if got := IsCrypto(test.code); got != test.expected {
			t.Errorf("IsCrypto(%q): expected %t, got %t", test.code, test.expected, got)
		}
	}
}

func TestCodeListsAreCopies(t *testing.T) {
	codes := AllFiatCodes()
	originalFirst := codes[0]
	codes[0] = "???"
	if AllFiatCodes()[0] != originalFirst {
		t.Fatal("mutating the slice returned by AllFiatCodes changed the package table")
	}

	codes = AllCryptoCodes()
	originalFirst = codes[0]
	codes[0] = "???"
	if AllCryptoCodes()[0] != originalFirst {
		t.Fatal("mutating the slice returned by AllCryptoCodes changed the package table")
	}
}
