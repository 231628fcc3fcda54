// Package ruleerrors defines the closed set of reasons a delayed payout
// transaction can be rejected. Callers match against the sentinel values
// with errors.Is; the wrapping message carries the human-readable detail.
package ruleerrors

// These variables are used to identify a specific RuleError.
var (
	// ErrMissingDelayedPayoutTx indicates the trade has no delayed payout
	// transaction attached at all.
	ErrMissingDelayedPayoutTx = newRuleError("ErrMissingDelayedPayoutTx")

	// ErrInvalidTx indicates the delayed payout transaction does not
	// deserialize to a well-formed transaction with the expected inputs
	// and outputs.
	ErrInvalidTx = newRuleError("ErrInvalidTx")

	// ErrDonationAddress indicates the donation output does not pay the
	// currently sanctioned donation address. This is the tamper check
	// against a counterparty redirecting the burned fee share.
	ErrDonationAddress = newRuleError("ErrDonationAddress")

	// ErrAmountMismatch indicates the escrow-share output value differs
	// from the trade's agreed payout amount minus the expected fee
	// contribution. The comparison is exact, in satoshi.
	ErrAmountMismatch = newRuleError("ErrAmountMismatch")

	// ErrInvalidLockTime indicates the transaction's lock time is outside
	// the window between the trade's agreed release height and the bound
	// that prevents indefinite fund-freezing.
	ErrInvalidLockTime = newRuleError("ErrInvalidLockTime")
)

// RuleError identifies a delayed payout transaction rule violation. It is
// used to indicate that processing of a trade failed due to the
// counterparty's transaction breaking one of the agreed rules rather than
// due to a local fault.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}
