package handle

// StateInterface is a read-only handle published by a hardware component.
// It is a plain value: copies share the referenced slot and any number of
// consumers may hold one.
type StateInterface struct {
	ReadOnly
}

// NewStateInterface creates a state interface. Pass the zero Ref for an
// interface the component declares but does not back with storage.
func NewStateInterface(name, interfaceName string, ref Ref) StateInterface {
	return StateInterface{ReadOnly: NewReadOnly(name, interfaceName, ref)}
}

// noCopy lets `go vet` flag struct copies of types embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// CommandInterface is a read-write handle with exclusive ownership of its
// slot. It is always used through a pointer. A bound command interface holds
// the slot lease: no second command interface can be created for the slot
// until this one is released, and Move is the only way to relocate it.
//
// A struct copy of a CommandInterface is not an owner. Every call on a copy
// fails with ErrCopied.
type CommandInterface struct {
	_ noCopy

	addr  *CommandInterface
	rw    ReadWrite
	lease uint64
}

func newCommandInterface(rw ReadWrite, lease uint64) *CommandInterface {
	ci := &CommandInterface{rw: rw, lease: lease}
	ci.addr = ci
	return ci
}

// NewCommandInterface creates a command interface and takes the lease of the
// referenced slot. It fails with ErrAlreadyOwned if another live command
// interface holds the slot. An unbound command interface (zero Ref) holds no
// lease.
func NewCommandInterface(name, interfaceName string, ref Ref) (*CommandInterface, error) {
	rw := NewReadWrite(name, interfaceName, ref)
	if !ref.IsBound() {
		return newCommandInterface(rw, 0), nil
	}
	lease, err := ref.store.acquire(ref.index)
	if err != nil {
		return nil, err
	}
	return newCommandInterface(rw, lease), nil
}

// Name returns the owning entity name.
func (c *CommandInterface) Name() string { return c.rw.Name() }

// InterfaceName returns the semantic channel.
func (c *CommandInterface) InterfaceName() string { return c.rw.InterfaceName() }

// FullName returns "<name>/<interface name>".
func (c *CommandInterface) FullName() string { return c.rw.FullName() }

// IsBound reports whether the interface references a value.
func (c *CommandInterface) IsBound() bool { return c.rw.IsBound() }

// Kind returns the kind of the referenced value.
func (c *CommandInterface) Kind() Kind { return c.rw.Kind() }

// SameSlot reports whether c and other reference the same slot of the same
// store. Two unbound interfaces never share a slot.
func (c *CommandInterface) SameSlot(other *CommandInterface) bool {
	if other == nil || !c.rw.IsBound() || !other.rw.IsBound() {
		return false
	}
	return c.rw.ref.store == other.rw.ref.store && c.rw.ref.index == other.rw.ref.index
}

// Move transfers ownership to a new instance. The receiver is dead after a
// successful Move; every later call on it fails with ErrMoved.
func (c *CommandInterface) Move() (*CommandInterface, error) {
	if c.addr != c {
		return nil, ErrCopied
	}
	if !c.rw.IsBound() {
		return newCommandInterface(c.rw, 0), nil
	}
	if c.lease == 0 {
		return nil, ErrMoved
	}
	ref := c.rw.ref
	lease, err := ref.store.transfer(ref.index, c.lease)
	if err != nil {
		return nil, err
	}
	c.lease = 0
	return newCommandInterface(c.rw, lease), nil
}

// Release gives the slot lease back. The receiver is dead afterwards.
// Releasing a moved, copied or unbound interface does nothing.
func (c *CommandInterface) Release() {
	if c.addr != c || !c.rw.IsBound() || c.lease == 0 {
		return
	}
	c.rw.ref.store.release(c.rw.ref.index, c.lease)
	c.lease = 0
}

// check verifies the receiver still owns its slot.
func (c *CommandInterface) check() error {
	if c.addr != c {
		return ErrCopied
	}
	if !c.rw.IsBound() {
		return ErrUnbound
	}
	if c.lease == 0 {
		return ErrMoved
	}
	return c.rw.ref.store.holds(c.rw.ref.index, c.lease)
}

// Value returns a copy of the referenced value.
func (c *CommandInterface) Value() (Value, error) {
	if err := c.check(); err != nil {
		return Value{}, err
	}
	return c.rw.Value()
}

// Float64 returns the referenced float64.
func (c *CommandInterface) Float64() (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.rw.Float64()
}

// Int32 returns the referenced int32.
func (c *CommandInterface) Int32() (int32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.rw.Int32()
}

// Uint32 returns the referenced uint32.
func (c *CommandInterface) Uint32() (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.rw.Uint32()
}

// Bytes returns a copy of the referenced byte sequence.
func (c *CommandInterface) Bytes() ([]byte, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return c.rw.Bytes()
}

// Float64s returns a copy of the referenced float sequence.
func (c *CommandInterface) Float64s() ([]float64, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return c.rw.Float64s()
}

// SetValue writes v into the slot.
func (c *CommandInterface) SetValue(v Value) error {
	if err := c.check(); err != nil {
		return err
	}
	return c.rw.SetValue(v)
}

// SetFloat64 writes a float64.
func (c *CommandInterface) SetFloat64(f float64) error { return c.SetValue(Float64(f)) }

// SetInt32 writes an int32.
func (c *CommandInterface) SetInt32(i int32) error { return c.SetValue(Int32(i)) }

// SetUint32 writes a uint32.
func (c *CommandInterface) SetUint32(u uint32) error { return c.SetValue(Uint32(u)) }

// SetBytes writes a byte sequence.
func (c *CommandInterface) SetBytes(b []byte) error { return c.SetValue(Bytes(b)) }

// SetFloat64s writes a float sequence.
func (c *CommandInterface) SetFloat64s(fs []float64) error { return c.SetValue(Float64s(fs)) }
