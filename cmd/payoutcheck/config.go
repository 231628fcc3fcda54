package main

import (
	"github.com/escrownet/escrowd/infrastructure/config"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type configFlags struct {
	Transaction     string `short:"t" long:"transaction" description:"Delayed payout transaction in HEX format"`
	PayoutAmount    int64  `long:"payout-amount" description:"Agreed payout amount in satoshi"`
	FeeShare        int64  `long:"fee-share" description:"Expected fee contribution in satoshi"`
	LockHeight      uint32 `long:"lock-height" description:"Agreed earliest-release block height"`
	BestHeight      uint32 `long:"best-height" description:"Current chain height"`
	DonationAddress string `long:"donation-address" description:"Override the sanctioned donation address of the active network"`
	ShowVersion     bool   `short:"V" long:"version" description:"Display version information and exit"`
	config.NetworkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if cfg.Transaction == "" {
		return nil, errors.New("--transaction is required")
	}
	if cfg.PayoutAmount <= 0 {
		return nil, errors.New("--payout-amount must be a positive satoshi amount")
	}
	if cfg.FeeShare < 0 || cfg.FeeShare > cfg.PayoutAmount {
		return nil, errors.New("--fee-share must be between 0 and the payout amount")
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	if cfg.DonationAddress == "" {
		cfg.DonationAddress = cfg.NetParams().DonationAddress
	}
	if cfg.DonationAddress == "" {
		return nil, errors.Errorf("network %s has no default donation address, "+
			"--donation-address is required", cfg.NetParams().Name)
	}

	return cfg, nil
}
