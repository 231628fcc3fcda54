package config

import (
	"testing"

	"github.com/btcsuite/btcutil"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name           string
		flags          NetworkFlags
		expectedParams *Params
		expectsErr     bool
	}{
		{
			name:           "no network defaults to mainnet",
			flags:          NetworkFlags{},
			expectedParams: &MainnetParams,
		},
		{
			name:           "testnet",
			flags:          NetworkFlags{Testnet: true},
			expectedParams: &TestnetParams,
		},
		{
			name:           "regtest",
			flags:          NetworkFlags{Regtest: true},
			expectedParams: &RegtestParams,
		},
		{
			name:           "simnet",
			flags:          NetworkFlags{Simnet: true},
			expectedParams: &SimnetParams,
		},
		{
			name:       "multiple networks",
			flags:      NetworkFlags{Testnet: true, Simnet: true},
			expectsErr: true,
		},
	}

	for _, test := range tests {
		err := test.flags.ResolveNetwork(nil)
		if test.expectsErr {
			if err == nil {
				t.Errorf("%s: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %+v", test.name, err)
			continue
		}
		if test.flags.NetParams() != test.expectedParams {
			t.Errorf("%s: expected %s, got %s", test.name,
				test.expectedParams.Name, test.flags.NetParams().Name)
		}
	}
}

// Every network that ships a default donation address must ship one that
// decodes under its own chain parameters. Simnet deliberately ships none.
func TestDefaultDonationAddresses(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &RegtestParams} {
		_, err := btcutil.DecodeAddress(params.DonationAddress, params.Params)
		if err != nil {
			t.Errorf("%s: default donation address %q does not decode: %+v",
				params.Name, params.DonationAddress, err)
		}
	}
	if SimnetParams.DonationAddress != "" {
		t.Errorf("simnet should have no default donation address, got %q",
			SimnetParams.DonationAddress)
	}
}

func TestDonationAddressOrDefault(t *testing.T) {
	cfgFlags := defaultFlags()
	cfgFlags.Testnet = true
	if err := cfgFlags.ResolveNetwork(nil); err != nil {
		t.Fatalf("ResolveNetwork: %+v", err)
	}
	cfg := &Config{Flags: cfgFlags}

	if cfg.DonationAddressOrDefault() != TestnetParams.DonationAddress {
		t.Errorf("expected the testnet default, got %q", cfg.DonationAddressOrDefault())
	}

	cfg.DonationAddress = "override"
	if cfg.DonationAddressOrDefault() != "override" {
		t.Errorf("expected the override, got %q", cfg.DonationAddressOrDefault())
	}
}
