package config

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// Params holds the network parameters escrowd operates under: the chain
// parameters plus the network's sanctioned donation address.
type Params struct {
	*chaincfg.Params

	// DonationAddress is the default sanctioned donation address for the
	// network. It can be overridden with --donationaddress.
	DonationAddress string
}

// Network parameter definitions. Simnet has no well-known donation address;
// operators must pass one explicitly.
var (
	MainnetParams = Params{
		Params:          &chaincfg.MainNetParams,
		DonationAddress: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
	}
	TestnetParams = Params{
		Params:          &chaincfg.TestNet3Params,
		DonationAddress: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
	}
	RegtestParams = Params{
		Params:          &chaincfg.RegressionNetParams,
		DonationAddress: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
	}
	SimnetParams = Params{
		Params: &chaincfg.SimNetParams,
	}
)

// NetworkFlags holds the network configuration, that is which network is
// selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network"`
	Regtest bool `long:"regtest" description:"Use the regression test network"`
	Simnet  bool `long:"simnet" description:"Use the simulation test network"`

	ActiveNetParams *Params
}

// ResolveNetwork parses the network command line arguments and sets
// ActiveNetParams accordingly. It returns an error if more than one network
// was selected, and defaults to mainnet if none was.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	networkFlags.ActiveNetParams = &MainnetParams
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &TestnetParams
	}
	if networkFlags.Regtest {
		numNets++
		networkFlags.ActiveNetParams = &RegtestParams
	}
	if networkFlags.Simnet {
		numNets++
		networkFlags.ActiveNetParams = &SimnetParams
	}
	if numNets > 1 {
		err := errors.New("multiple network parameters (testnet, regtest, simnet) " +
			"cannot be used together. Please choose only one network")
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	return nil
}

// NetParams returns the currently active network parameters.
func (networkFlags *NetworkFlags) NetParams() *Params {
	return networkFlags.ActiveNetParams
}
