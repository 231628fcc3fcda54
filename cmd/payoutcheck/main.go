// payoutcheck validates a delayed payout transaction against its trade's
// agreed parameters without touching a wallet or the network. It is meant
// for inspecting a transaction received from a counterparty before
// proceeding with a trade.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcutil"
	"github.com/escrownet/escrowd/domain/trade"
	"github.com/escrownet/escrowd/version"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		printErrorAndExit(err, "Failed to parse arguments")
	}

	if cfg.ShowVersion {
		fmt.Printf("payoutcheck version %s\n", version.Version())
		return
	}

	payoutTx, err := hex.DecodeString(cfg.Transaction)
	if err != nil {
		printErrorAndExit(err, "Failed to decode transaction hex")
	}

	t := &trade.Trade{
		ID:               "payoutcheck",
		PayoutAmount:     btcutil.Amount(cfg.PayoutAmount),
		PayoutTxFeeShare: btcutil.Amount(cfg.FeeShare),
		LockTime:         cfg.LockHeight,
		DelayedPayoutTx:  payoutTx,
	}

	err = trade.ValidateDelayedPayoutTx(t, trade.StaticDonationAddress(cfg.DonationAddress),
		cfg.BestHeight, cfg.NetParams().Params)
	if err != nil {
		fmt.Printf("Delayed payout transaction is INVALID: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("Delayed payout transaction is valid")
}

func printErrorAndExit(err error, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err)
	os.Exit(1)
}
