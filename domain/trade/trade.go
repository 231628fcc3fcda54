package trade

import (
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
)

// DonationAddressSource supplies the currently sanctioned donation address.
// The value is queried on every validation; it is never cached across calls.
type DonationAddressSource interface {
	CurrentDonationAddress() string
}

// StaticDonationAddress is a DonationAddressSource with a fixed value.
type StaticDonationAddress string

// CurrentDonationAddress returns the fixed address.
func (a StaticDonationAddress) CurrentDonationAddress() string {
	return string(a)
}

// Trade is an active instance of a matched offer. The escrow outpoint is
// the multisig output both parties funded; the delayed payout transaction
// is the pre-agreed fallback for releasing it without live cooperation.
type Trade struct {
	ID      string
	OfferID string
	Date    time.Time

	// EscrowOutpoint is the multisig output the delayed payout
	// transaction spends.
	EscrowOutpoint wire.OutPoint

	// PayoutAmount is the negotiated payout, in satoshi.
	PayoutAmount btcutil.Amount

	// PayoutTxFeeShare is the expected fee contribution deducted from the
	// escrow-share output, in satoshi.
	PayoutTxFeeShare btcutil.Amount

	// LockTime is the agreed earliest block height at which the delayed
	// payout transaction becomes valid.
	LockTime uint32

	// DelayedPayoutTx is the serialized delayed payout transaction, or
	// nil while the parties have not exchanged it yet.
	DelayedPayoutTx []byte
}
