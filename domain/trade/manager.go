package trade

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
)

// Manager holds the live trades and runs delayed payout transaction
// validation on them. The manager owns its collection; readers always get
// snapshot copies.
//
// When the operator has enabled allowFaultyDelayedTxs, validation failures
// are downgraded to logged warnings instead of blocking the trade. Absent
// the override every failure is returned to the caller and must be
// surfaced before the trade proceeds.
type Manager struct {
	mutex                 sync.RWMutex
	trades                map[string]*Trade
	donationSource        DonationAddressSource
	params                *chaincfg.Params
	allowFaultyDelayedTxs bool
}

// NewManager returns a trade manager validating against the given network
// and donation-address source.
func NewManager(params *chaincfg.Params, donationSource DonationAddressSource,
	allowFaultyDelayedTxs bool) *Manager {

	return &Manager{
		trades:                make(map[string]*Trade),
		donationSource:        donationSource,
		params:                params,
		allowFaultyDelayedTxs: allowFaultyDelayedTxs,
	}
}

// AllowsFaultyDelayedTxs returns whether the operator override for faulty
// delayed payout transactions is enabled.
func (m *Manager) AllowsFaultyDelayedTxs() bool {
	return m.allowFaultyDelayedTxs
}

// AddTrade registers a new live trade. Trade IDs must be unique.
func (m *Manager) AddTrade(t *Trade) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.trades[t.ID]; ok {
		return errors.Errorf("trade %s is already registered", t.ID)
	}
	m.trades[t.ID] = t
	log.Infof("Registered trade %s for offer %s", t.ID, t.OfferID)
	return nil
}

// RemoveTrade deletes a trade from the live set. Removing an unknown ID is
// a no-op.
func (m *Manager) RemoveTrade(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.trades[id]; ok {
		delete(m.trades, id)
		log.Infof("Removed trade %s", id)
	}
}

// Trade returns the live trade with the given ID.
func (m *Manager) Trade(id string) (*Trade, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	t, ok := m.trades[id]
	return t, ok
}

// Trades returns a snapshot copy of the live trades.
func (m *Manager) Trades() []*Trade {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	snapshot := make([]*Trade, 0, len(m.trades))
	for _, t := range m.trades {
		snapshot = append(snapshot, t)
	}
	return snapshot
}

// AttachDelayedPayoutTx validates payoutTx against the trade before
// attaching it, so an already accepted transaction is never silently
// replaced by a structurally different one. Under the operator override a
// failing transaction is still attached, with a warning logged.
func (m *Manager) AttachDelayedPayoutTx(tradeID string, payoutTx []byte, bestHeight uint32) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	t, ok := m.trades[tradeID]
	if !ok {
		return errors.Errorf("unknown trade %s", tradeID)
	}

	candidate := *t
	candidate.DelayedPayoutTx = payoutTx
	err := ValidateDelayedPayoutTx(&candidate, m.donationSource, bestHeight, m.params)
	if err != nil {
		if !m.allowFaultyDelayedTxs {
			return err
		}
		log.Warnf("Attaching faulty delayed payout transaction to trade %s "+
			"per operator override: %s", tradeID, err)
	}

	t.DelayedPayoutTx = payoutTx
	return nil
}

// CheckDelayedPayoutTx validates the trade's attached delayed payout
// transaction. Under the operator override a validation failure is
// downgraded to a logged warning and nil is returned.
func (m *Manager) CheckDelayedPayoutTx(t *Trade, bestHeight uint32) error {
	err := ValidateDelayedPayoutTx(t, m.donationSource, bestHeight, m.params)
	if err == nil {
		return nil
	}
	if m.allowFaultyDelayedTxs {
		log.Warnf("Ignoring faulty delayed payout transaction of trade %s "+
			"per operator override: %s", t.ID, err)
		return nil
	}
	return err
}
