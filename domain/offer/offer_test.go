package offer

import (
	"testing"

	"github.com/escrownet/escrowd/domain/paymentmethod"
)

func TestDirectionMirror(t *testing.T) {
	if Buy.Mirror() != Sell {
		t.Fatal("the mirror of BUY must be SELL")
	}
	if Sell.Mirror() != Buy {
		t.Fatal("the mirror of SELL must be BUY")
	}

	o := &Offer{Direction: Buy}
	if o.MirroredDirection() != Sell {
		t.Fatal("the taker of a BUY offer trades in the SELL direction")
	}
}

func TestOfferValidate(t *testing.T) {
	tests := []struct {
		name      string
		offer     *Offer
		expectErr bool
	}{
		{
			name: "valid",
			offer: &Offer{
				Method:       paymentmethod.SEPA,
				CurrencyCode: "EUR",
				MinAmount:    100,
				MaxAmount:    1000,
			},
			expectErr: false,
		},
		{
			name: "min equals max",
			offer: &Offer{
				Method:       paymentmethod.SEPA,
				CurrencyCode: "EUR",
				MinAmount:    100,
				MaxAmount:    100,
			},
			expectErr: false,
		},
		{
			name: "unknown method",
			offer: &Offer{
				Method:       "NO_SUCH_METHOD",
				CurrencyCode: "EUR",
			},
			expectErr: true,
		},
		{
			name: "unsupported currency",
			offer: &Offer{
				Method:       paymentmethod.SEPA,
				CurrencyCode: "USD",
			},
			expectErr: true,
		},
		{
			name: "min above max",
			offer: &Offer{
				Method:       paymentmethod.SEPA,
				CurrencyCode: "EUR",
				MinAmount:    1000,
				MaxAmount:    100,
			},
			expectErr: true,
		},
	}
	for _, test := range tests {
		err := test.offer.Validate()
		if test.expectErr && err == nil {
			t.Errorf("%s: expected an error, got none", test.name)
		}
		if !test.expectErr && err != nil {
			t.Errorf("%s: unexpected error: %+v", test.name, err)
		}
	}
}
