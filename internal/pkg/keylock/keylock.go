// Package keylock provides a mutex per string key. It is the single serialized
// entry point for order mutations: manual transitions, courier assignment and
// timer escalation all lock the order id before touching the order.
package keylock

import (
	"github.com/moby/locker"
)

// KeyedMutex hands out one mutex per key on top of moby/locker, which reference
// counts its entries and drops them once nobody holds or waits for a key.
type KeyedMutex struct {
	locks *locker.Locker
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: locker.New()}
}

// Lock blocks until the mutex for key is held and returns the function that
// releases it. The returned function must be called exactly once.
//
// Example:
//
//	unlock := locks.Lock(orderID.String())
//	defer unlock()
func (k *KeyedMutex) Lock(key string) func() {
	k.locks.Lock(key)
	return func() {
		// only fails for a key that is not locked, which the contract above excludes
		_ = k.locks.Unlock(key)
	}
}
