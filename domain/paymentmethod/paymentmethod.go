package paymentmethod

import "github.com/escrownet/escrowd/domain/currency"

// ID identifies a payment method (rail). The set of IDs is static and known
// at compile time; new rails are added by extending the tables in this
// package, not by adding branching logic elsewhere.
type ID string

// Known payment method IDs.
const (
	SEPA                ID = "SEPA"
	SEPAInstant         ID = "SEPA_INSTANT"
	NationalBank        ID = "NATIONAL_BANK"
	SameBank            ID = "SAME_BANK"
	SpecificBanks       ID = "SPECIFIC_BANKS"
	CashDeposit         ID = "CASH_DEPOSIT"
	CashByMail          ID = "CASH_BY_MAIL"
	FaceToFace          ID = "F2F"
	Swift               ID = "SWIFT"
	FasterPayments      ID = "FASTER_PAYMENTS"
	Swish               ID = "SWISH"
	Zelle               ID = "ZELLE"
	ChaseQuickPay       ID = "CHASE_QUICK_PAY"
	Popmoney            ID = "POPMONEY"
	MoneyBeam           ID = "MONEY_BEAM"
	MoneyGram           ID = "MONEY_GRAM"
	WesternUnion        ID = "WESTERN_UNION"
	Uphold              ID = "UPHOLD"
	Revolut             ID = "REVOLUT"
	PerfectMoney        ID = "PERFECT_MONEY"
	AdvancedCash        ID = "ADVANCED_CASH"
	TransferWise        ID = "TRANSFERWISE"
	AmazonGiftCard      ID = "AMAZON_GIFT_CARD"
	AliPay              ID = "ALI_PAY"
	WeChatPay           ID = "WECHAT_PAY"
	HalCash             ID = "HAL_CASH"
	PromptPay           ID = "PROMPT_PAY"
	InteracETransfer    ID = "INTERAC_E_TRANSFER"
	JapanBank           ID = "JAPAN_BANK"
	AustraliaPayID      ID = "AUSTRALIA_PAYID"
	USPostalMoneyOrder  ID = "US_POSTAL_MONEY_ORDER"
	BlockChains         ID = "BLOCK_CHAINS"
	BlockChainsInstant  ID = "BLOCK_CHAINS_INSTANT"
)

// Currency sets shared between methods. Families of rails deliberately
// reference the same slice so a catalog change applies to the whole family.
var (
	euroOnly   = []string{"EUR"}
	allFiat    = currency.AllFiatCodes()
	allCrypto  = currency.AllCryptoCodes()
	usdOnly    = []string{"USD"}
	revolutSet = []string{
		"AED", "AUD", "CAD", "CHF", "CZK", "DKK", "EUR", "GBP", "HKD",
		"HUF", "ILS", "JPY", "MXN", "NOK", "NZD", "PLN", "RON", "SEK",
		"SGD", "THB", "TRY", "USD", "ZAR",
	}
	upholdSet = []string{
		"AUD", "BRL", "CAD", "CHF", "CNY", "DKK", "EUR", "GBP", "HKD",
		"ILS", "INR", "JPY", "KRW", "MXN", "NOK", "NZD", "PHP", "PLN",
		"SEK", "SGD", "THB", "USD",
	}
	moneyGramSet = []string{
		"AED", "AUD", "BRL", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR",
		"GBP", "HKD", "IDR", "ILS", "INR", "JPY", "KRW", "MXN", "MYR",
		"NOK", "NZD", "PHP", "PLN", "SEK", "SGD", "THB", "TRY", "USD",
		"VND", "ZAR",
	}
	advancedCashSet = []string{"BRL", "EUR", "GBP", "KZT", "RUB", "UAH", "USD"}
	transferWiseSet = []string{
		"AED", "AUD", "BRL", "CAD", "CHF", "CZK", "DKK", "EUR", "GBP",
		"HKD", "HUF", "IDR", "ILS", "INR", "JPY", "KRW", "MXN", "MYR",
		"NOK", "NZD", "PHP", "PLN", "RON", "RUB", "SEK", "SGD", "THB",
		"TRY", "USD", "VND", "ZAR",
	}
	amazonGiftCardSet = []string{"AUD", "CAD", "EUR", "GBP", "INR", "JPY", "SGD", "TRY", "USD"}
	perfectMoneySet   = []string{"EUR", "USD"}
)

// tradeCurrencies maps every known method to the currency codes it supports.
// Methods absent from the map support nothing.
var tradeCurrencies = map[ID][]string{
	SEPA:        euroOnly,
	SEPAInstant: euroOnly,
	MoneyBeam:   euroOnly,
	HalCash:     euroOnly,

	NationalBank:  allFiat,
	SameBank:      allFiat,
	SpecificBanks: allFiat,
	CashDeposit:   allFiat,
	CashByMail:    allFiat,
	FaceToFace:    allFiat,
	Swift:         allFiat,

	FasterPayments: {"GBP"},
	Swish:          {"SEK"},

	Zelle:              usdOnly,
	ChaseQuickPay:      usdOnly,
	Popmoney:           usdOnly,
	USPostalMoneyOrder: usdOnly,

	MoneyGram:    moneyGramSet,
	WesternUnion: moneyGramSet,

	Uphold:         upholdSet,
	Revolut:        revolutSet,
	PerfectMoney:   perfectMoneySet,
	AdvancedCash:   advancedCashSet,
	TransferWise:   transferWiseSet,
	AmazonGiftCard: amazonGiftCardSet,

	AliPay:    {"CNY"},
	WeChatPay: {"CNY"},
	PromptPay: {"THB"},

	InteracETransfer: {"CAD"},
	JapanBank:        {"JPY"},
	AustraliaPayID:   {"AUD"},

	BlockChains:        allCrypto,
	BlockChainsInstant: allCrypto,
}

// riskyMethods lists the rails whose payment network can reverse a transfer
// after the seller has released the traded asset.
var riskyMethods = map[ID]struct{}{
	SEPA:             {},
	SEPAInstant:      {},
	NationalBank:     {},
	SameBank:         {},
	SpecificBanks:    {},
	Zelle:            {},
	ChaseQuickPay:    {},
	Popmoney:         {},
	MoneyBeam:        {},
	Revolut:          {},
	Uphold:           {},
	InteracETransfer: {},
}

// Exists returns whether id is a known payment method.
func Exists(id ID) bool {
	_, ok := tradeCurrencies[id]
	return ok
}

// TradeCurrencies returns the currency codes the method supports. The
// returned slice is a copy and may be freely modified by the caller.
func TradeCurrencies(id ID) []string {
	set, ok := tradeCurrencies[id]
	if !ok {
		return nil
	}
	codes := make([]string, len(set))
	copy(codes, set)
	return codes
}

// SupportsCurrency returns whether the method supports trading currencyCode.
func SupportsCurrency(id ID, currencyCode string) bool {
	for _, code := range tradeCurrencies[id] {
		if code == currencyCode {
			return true
		}
	}
	return false
}

// HasChargebackRisk returns whether a trade over the given method and
// currency is exposed to a unilateral chargeback by the payment network.
// A method only carries the risk for currencies it actually serves.
func HasChargebackRisk(id ID, currencyCode string) bool {
	if _, risky := riskyMethods[id]; !risky {
		return false
	}
	return SupportsCurrency(id, currencyCode)
}

// IsCryptoRail returns whether the method settles in an altcoin rather
// than over a fiat payment network.
func IsCryptoRail(id ID) bool {
	return id == BlockChains || id == BlockChainsInstant
}

// AreInterchangeable reports whether two methods are declared mutually
// compatible for offer taking. The standard SEPA rail and its instant
// variant are the only such pair.
func AreInterchangeable(a, b ID) bool {
	return (a == SEPA && b == SEPAInstant) || (a == SEPAInstant && b == SEPA)
}
