package handle

import (
	"errors"
	"fmt"
	"sync"
)

// Handle errors.
var (
	ErrUnbound      = errors.New("handle is not bound to a value")
	ErrKindMismatch = errors.New("value kind mismatch")
	ErrReleased     = errors.New("handle storage has been released")
	ErrAlreadyOwned = errors.New("command slot already owned")
	ErrMoved        = errors.New("command interface has been moved")
	ErrCopied       = errors.New("command interface was copied")
)

// slot is one value cell in a Store.
type slot struct {
	value Value

	// lease is the id of the command interface holding the slot, 0 if none.
	lease uint64
}

// Store is the arena a hardware component allocates its interface storage
// from. Handles refer to slots by index, so a Store must outlive every handle
// created from its Refs; Release marks the end of that lifetime.
type Store struct {
	mu        sync.RWMutex
	slots     []slot
	released  bool
	nextLease uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Alloc adds a slot holding initial and returns its Ref. The slot kind is the
// kind of initial; allocating a KindNone value returns the zero (unbound) Ref.
func (s *Store) Alloc(initial Value) Ref {
	if initial.kind == KindNone {
		return Ref{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = append(s.slots, slot{value: cloneValue(initial)})
	return Ref{store: s, index: len(s.slots) - 1, kind: initial.kind}
}

// Float64 allocates a float64 slot.
func (s *Store) Float64(v float64) Ref { return s.Alloc(Float64(v)) }

// Int32 allocates an int32 slot.
func (s *Store) Int32(v int32) Ref { return s.Alloc(Int32(v)) }

// Uint32 allocates a uint32 slot.
func (s *Store) Uint32(v uint32) Ref { return s.Alloc(Uint32(v)) }

// Bytes allocates a byte sequence slot.
func (s *Store) Bytes(b []byte) Ref { return s.Alloc(Bytes(b)) }

// Float64s allocates a float sequence slot.
func (s *Store) Float64s(fs []float64) Ref { return s.Alloc(Float64s(fs)) }

// Len returns the number of allocated slots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// Release ends the storage lifetime. Subsequent access through any Ref of
// this store fails with ErrReleased. Release is idempotent.
func (s *Store) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
}

// Released reports whether Release has been called.
func (s *Store) Released() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.released
}

func (s *Store) load(index int) (Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.released {
		return Value{}, ErrReleased
	}
	return cloneValue(s.slots[index].value), nil
}

func (s *Store) store(index int, v Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrReleased
	}
	cur := &s.slots[index]
	if cur.value.kind != v.kind {
		return fmt.Errorf("%w: slot holds %s, got %s", ErrKindMismatch, cur.value.kind, v.kind)
	}
	cur.value = cloneValue(v)
	return nil
}

// acquire takes the lease of a slot and returns the new lease id.
func (s *Store) acquire(index int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return 0, ErrReleased
	}
	if s.slots[index].lease != 0 {
		return 0, ErrAlreadyOwned
	}
	s.nextLease++
	s.slots[index].lease = s.nextLease
	return s.nextLease, nil
}

// transfer hands the lease held by from over to a fresh lease id.
func (s *Store) transfer(index int, from uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return 0, ErrReleased
	}
	if s.slots[index].lease != from {
		return 0, ErrMoved
	}
	s.nextLease++
	s.slots[index].lease = s.nextLease
	return s.nextLease, nil
}

func (s *Store) release(index int, lease uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slots[index].lease == lease {
		s.slots[index].lease = 0
	}
}

func (s *Store) holds(index int, lease uint64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.released {
		return ErrReleased
	}
	if s.slots[index].lease != lease {
		return ErrMoved
	}
	return nil
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindBytes:
		return Bytes(v.b)
	case KindFloat64s:
		return Float64s(v.fs)
	default:
		return v
	}
}

// Ref is a stable reference to one slot of a Store. The zero Ref is unbound.
type Ref struct {
	store *Store
	index int
	kind  Kind
}

// IsBound reports whether r refers to a slot.
func (r Ref) IsBound() bool { return r.store != nil }

// Kind returns the slot kind, KindNone for the zero Ref.
func (r Ref) Kind() Kind { return r.kind }

// Load returns a copy of the slot value.
func (r Ref) Load() (Value, error) {
	if r.store == nil {
		return Value{}, ErrUnbound
	}
	return r.store.load(r.index)
}

// Store writes v into the slot. The kind of v must match the slot kind.
// Store bypasses command leases; it is how the owning component publishes
// state and is not meant for consumers.
func (r Ref) Store(v Value) error {
	if r.store == nil {
		return ErrUnbound
	}
	return r.store.store(r.index, v)
}

// LoadFloat64 is Load for float64 slots.
func (r Ref) LoadFloat64() (float64, error) {
	v, err := r.Load()
	if err != nil {
		return 0, err
	}
	f, ok := v.AsFloat64()
	if !ok {
		return 0, mismatch(KindFloat64, v.kind)
	}
	return f, nil
}

// StoreFloat64 is Store for float64 slots.
func (r Ref) StoreFloat64(f float64) error {
	return r.Store(Float64(f))
}

func mismatch(want, got Kind) error {
	return fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, want, got)
}
