package payment

import (
	"sync"

	"github.com/pkg/errors"
)

// AccountRegistry holds the user's payment accounts. The registry owns its
// collection; readers always get a snapshot copy, so the eligibility
// functions can iterate it safely while accounts are added or removed
// concurrently.
type AccountRegistry struct {
	mutex    sync.RWMutex
	accounts []Account
}

// NewAccountRegistry returns an empty account registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{}
}

// Add registers a new account. Account IDs must be unique.
func (r *AccountRegistry) Add(account Account) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, existing := range r.accounts {
		if existing.ID() == account.ID() {
			return errors.Errorf("account %s is already registered", account.ID())
		}
	}
	r.accounts = append(r.accounts, account)
	log.Infof("Registered %s account %s", account.Method(), account.ID())
	return nil
}

// Remove deletes the account with the given ID. Removing an unknown ID is
// a no-op.
func (r *AccountRegistry) Remove(id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for i, account := range r.accounts {
		if account.ID() == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			log.Infof("Removed account %s", id)
			return
		}
	}
}

// Accounts returns a snapshot copy of the registered accounts in
// registration order.
func (r *AccountRegistry) Accounts() []Account {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	snapshot := make([]Account, len(r.accounts))
	copy(snapshot, r.accounts)
	return snapshot
}
