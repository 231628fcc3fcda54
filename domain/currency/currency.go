package currency

// fiatCodes lists the ISO 4217 currency codes tradable over at least one
// fiat payment rail. Methods with no special restriction support all of them.
var fiatCodes = []string{
	"AED", "AUD", "BRL", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR", "GBP",
	"HKD", "HUF", "IDR", "ILS", "INR", "JPY", "KRW", "MXN", "MYR", "NOK",
	"NZD", "PHP", "PLN", "RON", "RUB", "SEK", "SGD", "THB", "TRY", "USD",
	"VND", "ZAR",
}

// cryptoCodes lists the altcoin codes tradable over the crypto rails.
// BTC itself is the settlement asset and is deliberately not listed.
var cryptoCodes = []string{
	"BCH", "DASH", "DCR", "DOGE", "ETC", "ETH", "GRIN", "LTC", "NMC",
	"SIA", "XMR", "ZEC",
}

var fiatSet = toSet(fiatCodes)
var cryptoSet = toSet(cryptoCodes)

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

// AllFiatCodes returns a copy of the full fiat currency code list.
func AllFiatCodes() []string {
	codes := make([]string, len(fiatCodes))
	copy(codes, fiatCodes)
	return codes
}

// AllCryptoCodes returns a copy of the full altcoin code list.
func AllCryptoCodes() []string {
	codes := make([]string, len(cryptoCodes))
	copy(codes, cryptoCodes)
	return codes
}

// IsFiat returns whether code is a known fiat currency code.
func IsFiat(code string) bool {
	_, ok := fiatSet[code]
	return ok
}

// IsCrypto returns whether code is a known altcoin code.
func IsCrypto(code string) bool {
	_, ok := cryptoSet[code]
	return ok
}
