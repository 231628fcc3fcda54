package trade

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/escrownet/escrowd/domain/trade/ruleerrors"
	"github.com/pkg/errors"
)

// MaxLockTimeBlocks is how far past the current chain height a delayed
// payout transaction's lock time may reach (about 30 days). A lock time
// beyond it would let a counterparty freeze the escrowed funds
// indefinitely.
const MaxLockTimeBlocks = 4320

// payoutTxOutputCount is the expected output count of a delayed payout
// transaction: the escrow-share output and the donation output.
const payoutTxOutputCount = 2

// Output indices within a delayed payout transaction.
const (
	escrowShareOutputIndex = 0
	donationOutputIndex    = 1
)

// ValidateDelayedPayoutTx validates the trade's attached delayed payout
// transaction against the trade's agreed parameters, the currently
// sanctioned donation address and the current chain height.
//
// The checks run in a fixed order and stop at the first violation, so the
// returned error always names the first failing rule: presence, structure,
// donation address, escrow-share amount, lock time. All returned failures
// unwrap to one of the ruleerrors sentinels.
func ValidateDelayedPayoutTx(t *Trade, donationSource DonationAddressSource,
	bestHeight uint32, params *chaincfg.Params) error {

	if len(t.DelayedPayoutTx) == 0 {
		return errors.Wrapf(ruleerrors.ErrMissingDelayedPayoutTx,
			"trade %s has no delayed payout transaction", t.ID)
	}

	tx, err := deserializePayoutTx(t.DelayedPayoutTx)
	if err != nil {
		return err
	}

	err = checkDonationOutput(tx.TxOut[donationOutputIndex], donationSource, params)
	if err != nil {
		return err
	}

	err = checkEscrowShareAmount(tx.TxOut[escrowShareOutputIndex], t)
	if err != nil {
		return err
	}

	return checkLockTime(tx.LockTime, t.LockTime, bestHeight)
}

func deserializePayoutTx(serializedTx []byte) (*wire.MsgTx, error) {
	tx := &wire.MsgTx{}
	err := tx.Deserialize(bytes.NewReader(serializedTx))
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidTx,
			"delayed payout transaction does not deserialize: %s", err)
	}
	if len(tx.TxIn) == 0 {
		return nil, errors.Wrap(ruleerrors.ErrInvalidTx,
			"delayed payout transaction has no inputs")
	}
	if len(tx.TxOut) != payoutTxOutputCount {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidTx,
			"expected %d outputs, got %d", payoutTxOutputCount, len(tx.TxOut))
	}
	return tx, nil
}

func checkDonationOutput(output *wire.TxOut, donationSource DonationAddressSource,
	params *chaincfg.Params) error {

	donationAddress := donationSource.CurrentDonationAddress()
	address, err := btcutil.DecodeAddress(donationAddress, params)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrDonationAddress,
			"sanctioned donation address %q does not parse: %s", donationAddress, err)
	}
	expectedScript, err := txscript.PayToAddrScript(address)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrDonationAddress,
			"cannot build output script for donation address %q: %s", donationAddress, err)
	}
	if !bytes.Equal(output.PkScript, expectedScript) {
		return errors.Wrapf(ruleerrors.ErrDonationAddress,
			"donation output pays %s instead of the sanctioned address %s",
			describeOutputAddress(output.PkScript, params), donationAddress)
	}
	return nil
}

func checkEscrowShareAmount(output *wire.TxOut, t *Trade) error {
	expected := t.PayoutAmount - t.PayoutTxFeeShare
	if output.Value != int64(expected) {
		return errors.Wrapf(ruleerrors.ErrAmountMismatch,
			"escrow-share output pays %d satoshi, expected %d (payout %d minus fee share %d)",
			output.Value, int64(expected), int64(t.PayoutAmount), int64(t.PayoutTxFeeShare))
	}
	return nil
}

func checkLockTime(lockTime, agreedReleaseHeight, bestHeight uint32) error {
	if lockTime >= txscript.LockTimeThreshold {
		return errors.Wrapf(ruleerrors.ErrInvalidLockTime,
			"lock time %d is time-based, expected a block height", lockTime)
	}
	if lockTime < agreedReleaseHeight {
		return errors.Wrapf(ruleerrors.ErrInvalidLockTime,
			"lock time %d is below the agreed release height %d", lockTime, agreedReleaseHeight)
	}
	if lockTime > bestHeight+MaxLockTimeBlocks {
		return errors.Wrapf(ruleerrors.ErrInvalidLockTime,
			"lock time %d is more than %d blocks past the current height %d",
			lockTime, MaxLockTimeBlocks, bestHeight)
	}
	return nil
}

// describeOutputAddress renders the address an output script pays, for
// error messages. Scripts that don't parse to a standard address are
// rendered as hex.
func describeOutputAddress(pkScript []byte, params *chaincfg.Params) string {
	_, addresses, _, err := txscript.ExtractPkScriptAddrs(pkScript, params)
	if err != nil || len(addresses) != 1 {
		return "a non-standard script"
	}
	return addresses[0].EncodeAddress()
}
