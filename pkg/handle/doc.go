// Package handle implements typed, non-owning references into storage owned by
// a hardware component.
//
// # Storage
//
// A hardware component allocates its value slots from a Store. Each slot has a
// fixed Kind chosen at allocation time:
//
//	float64    scalar (positions, velocities, efforts)
//	int32      signed integer
//	uint32     fixed-width unsigned integer (status words, counters)
//	bytes      raw byte sequence
//	float64[]  float sequence
//
// Alloc returns a Ref, a stable index into the store. The component keeps the
// Ref to refresh or consume the slot during its read and write cycles; handles
// keep a copy of the same Ref. When the component is torn down it calls
// Store.Release, after which every handle into that store reports ErrReleased.
//
// # Handles
//
// ReadOnly and ReadWrite name a slot by (name, interface name). FullName joins
// them with a single slash ("joint1/position"), the key used wherever
// interfaces are registered by name. A handle built with the zero Ref is
// unbound: IsBound reports false and every value access fails with ErrUnbound.
//
// # Interface roles
//
// StateInterface is a read-only handle with value semantics. Any number of
// copies may be handed to consumers; they all observe the same slot.
//
// CommandInterface is a read-write handle with exclusive ownership. Creating
// one takes the slot's lease, so at most one live command interface exists per
// slot. Ownership moves with Move; the previous instance is dead afterwards.
// A command interface remembers its own address, so a struct copy made by
// dereferencing the pointer fails every call with ErrCopied.
//
//	ci, err := handle.NewCommandInterface("joint1", "velocity", velRef)
//	owned, err := ci.Move()  // ci now fails with ErrMoved
//	_ = owned.SetFloat64(0.5)
package handle
