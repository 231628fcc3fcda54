package main

import (
	"fmt"

	"github.com/escrownet/escrowd/domain/payment"
	"github.com/escrownet/escrowd/domain/trade"
	"github.com/escrownet/escrowd/infrastructure/config"
	"github.com/escrownet/escrowd/infrastructure/logger"
	"github.com/escrownet/escrowd/infrastructure/os/signal"
	"github.com/escrownet/escrowd/version"
)

// escrowd holds the trading core services. The protocol, wallet and UI
// layers attach to these; escrowd itself only hosts them.
type escrowd struct {
	accountRegistry *payment.AccountRegistry
	tradeManager    *trade.Manager
}

func newEscrowd(cfg *config.Config) *escrowd {
	donationSource := trade.StaticDonationAddress(cfg.DonationAddressOrDefault())
	return &escrowd{
		accountRegistry: payment.NewAccountRegistry(),
		tradeManager: trade.NewManager(cfg.NetParams().Params, donationSource,
			cfg.AllowFaultyDelayedTxs),
	}
}

func escrowdMain() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	err = logger.InitLog(cfg.LogFile(), cfg.ErrLogFile())
	if err != nil {
		fmt.Printf("Error initializing logger: %+v\n", err)
		return err
	}

	log.Infof("Version %s", version.Version())
	log.Infof("Active network: %s", cfg.NetParams().Name)

	interrupt := signal.InterruptListener()

	e := newEscrowd(cfg)
	log.Infof("Trade manager ready, allow faulty delayed txs: %t",
		e.tradeManager.AllowsFaultyDelayedTxs())
	log.Infof("Account registry ready, %d accounts", len(e.accountRegistry.Accounts()))

	<-interrupt
	log.Infof("Shutdown complete")
	return nil
}
