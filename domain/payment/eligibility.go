package payment

import (
	"time"

	"github.com/btcsuite/btcutil"
	"github.com/escrownet/escrowd/domain/offer"
	"github.com/escrownet/escrowd/domain/paymentmethod"
)

// WitnessOracle supplies facts derived from account-age witness data. Both
// methods must be deterministic for a given snapshot of the witness data;
// any returned value, including zero, is treated as valid input.
type WitnessOracle interface {
	// TradeLimit returns the maximum amount, in satoshi, the account is
	// currently permitted to trade for the given currency and direction.
	TradeLimit(account Account, currencyCode string, direction offer.Direction) btcutil.Amount

	// AccountAge returns how long the account's identity has been
	// witnessed.
	AccountAge(account Account) time.Duration
}

// IsAmountValidForOffer returns whether the account's witnessed trade limit
// permits taking the offer. Methods without chargeback risk for the offer's
// currency are never limit-constrained. For risky methods the limit must
// cover the offer's minimum amount, since a taker can always offer at least
// that much.
func IsAmountValidForOffer(o *offer.Offer, account Account, oracle WitnessOracle) bool {
	if !paymentmethod.HasChargebackRisk(o.Method, o.CurrencyCode) {
		return true
	}
	limit := oracle.TradeLimit(account, o.CurrencyCode, o.MirroredDirection())
	return limit >= o.MinAmount
}

// IsAnyAccountValidForOffer returns whether at least one of the accounts
// can take the offer, judged by the receipt check alone.
func IsAnyAccountValidForOffer(o *offer.Offer, accounts []Account) bool {
	for _, account := range accounts {
		if IsAccountValidForOffer(o, account) {
			return true
		}
	}
	return false
}

// PossibleAccounts returns the accounts usable for the offer: those passing
// both the receipt check and the trade-limit gate. The result preserves the
// iteration order of the input and is always a subset of it.
func PossibleAccounts(o *offer.Offer, accounts []Account, oracle WitnessOracle) []Account {
	var result []Account
	for _, account := range accounts {
		if !IsAccountValidForOffer(o, account) {
			continue
		}
		if !IsAmountValidForOffer(o, account, oracle) {
			log.Debugf("Account %s is limit-constrained for offer %s", account.ID(), o.ID)
			continue
		}
		result = append(result, account)
	}
	return result
}

// MostMatureAccountForOffer returns the receipt-valid account with the
// oldest witnessed age, or false if no account is valid for the offer.
// Ties keep the earliest account in iteration order.
//
// The trade-limit gate is deliberately not applied here, so the caller can
// surface the user's best candidate even when it may still be
// limit-constrained; the amount check happens in a later step.
func MostMatureAccountForOffer(o *offer.Offer, accounts []Account, oracle WitnessOracle) (Account, bool) {
	var oldest Account
	var oldestAge time.Duration
	for _, account := range accounts {
		if !IsAccountValidForOffer(o, account) {
			continue
		}
		age := oracle.AccountAge(account)
		if oldest == nil || age > oldestAge {
			oldest = account
			oldestAge = age
		}
	}
	if oldest == nil {
		return nil, false
	}
	log.Debugf("Most mature account for offer %s is %s (age %s)", o.ID, oldest.ID(), oldestAge)
	return oldest, true
}
