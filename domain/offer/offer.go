package offer

import (
	"github.com/btcsuite/btcutil"
	"github.com/escrownet/escrowd/domain/paymentmethod"
	"github.com/pkg/errors"
)

// Direction is the maker's side of an offer.
type Direction int

// Offer directions.
const (
	Buy Direction = iota
	Sell
)

// Mirror returns the counterparty's view of the direction.
func (d Direction) Mirror() Direction {
	if d == Buy {
		return Sell
	}
	return Buy
}

func (d Direction) String() string {
	if d == Buy {
		return "BUY"
	}
	return "SELL"
}

// Offer is an immutable maker offer. It is created when the maker posts it
// and never mutated afterwards; cancellation and completion remove it.
//
// CountryCode and BankID are optional refinements: an empty value means the
// offer is not scoped to a country or bank and imposes no such constraint
// on taking accounts.
type Offer struct {
	ID           string
	Method       paymentmethod.ID
	CurrencyCode string
	Direction    Direction

	// MinAmount and MaxAmount bound the tradable amount in satoshi.
	MinAmount btcutil.Amount
	MaxAmount btcutil.Amount

	CountryCode string
	BankID      string
}

// MirroredDirection returns the direction a taker of this offer trades in.
func (o *Offer) MirroredDirection() Direction {
	return o.Direction.Mirror()
}

// Validate checks the offer's internal consistency.
func (o *Offer) Validate() error {
	if !paymentmethod.Exists(o.Method) {
		return errors.Errorf("unknown payment method %s", o.Method)
	}
	if !paymentmethod.SupportsCurrency(o.Method, o.CurrencyCode) {
		return errors.Errorf("payment method %s does not support currency %s",
			o.Method, o.CurrencyCode)
	}
	if o.MinAmount > o.MaxAmount {
		return errors.Errorf("min amount %s is above max amount %s",
			o.MinAmount, o.MaxAmount)
	}
	return nil
}
