package usecase

import "sync"

// subscriptionRegistry enforces the one-active-listener-per-recipient
// invariant. A recipient listens for exactly one order at a time;
// subscribing to a new order detaches the previous slot so it can never
// double-fire.
type subscriptionRegistry struct {
	mu    sync.RWMutex
	slots map[string]string // toUserID -> orderID
}

func newSubscriptionRegistry() *subscriptionRegistry {
	return &subscriptionRegistry{
		slots: make(map[string]string),
	}
}

// replace installs the recipient's listening slot, superseding any
// previous order subscription.
func (r *subscriptionRegistry) replace(toUserID, orderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[toUserID] = orderID
}

// remove releases the recipient's slot
func (r *subscriptionRegistry) remove(toUserID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, toUserID)
}

// listening reports whether the recipient's slot is bound to the order
func (r *subscriptionRegistry) listening(toUserID, orderID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	current, ok := r.slots[toUserID]
	return ok && current == orderID
}
