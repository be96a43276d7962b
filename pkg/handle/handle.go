package handle

// ReadOnly is a named, typed, non-owning view of a single slot.
type ReadOnly struct {
	name          string
	interfaceName string
	ref           Ref
}

// NewReadOnly creates a read-only handle. Pass the zero Ref for an unbound
// handle.
func NewReadOnly(name, interfaceName string, ref Ref) ReadOnly {
	return ReadOnly{name: name, interfaceName: interfaceName, ref: ref}
}

// Name returns the owning entity name, e.g. a joint.
func (h ReadOnly) Name() string { return h.name }

// InterfaceName returns the semantic channel, e.g. "position".
func (h ReadOnly) InterfaceName() string { return h.interfaceName }

// FullName returns "<name>/<interface name>".
func (h ReadOnly) FullName() string { return h.name + "/" + h.interfaceName }

// IsBound reports whether the handle references a value.
func (h ReadOnly) IsBound() bool { return h.ref.IsBound() }

// Kind returns the kind of the referenced value, KindNone when unbound.
func (h ReadOnly) Kind() Kind { return h.ref.Kind() }

// Value returns a copy of the referenced value.
func (h ReadOnly) Value() (Value, error) {
	return h.ref.Load()
}

// Float64 returns the referenced float64.
func (h ReadOnly) Float64() (float64, error) {
	v, err := h.typed(KindFloat64)
	return v.f, err
}

// Int32 returns the referenced int32.
func (h ReadOnly) Int32() (int32, error) {
	v, err := h.typed(KindInt32)
	return v.i, err
}

// Uint32 returns the referenced uint32.
func (h ReadOnly) Uint32() (uint32, error) {
	v, err := h.typed(KindUint32)
	return v.u, err
}

// Bytes returns a copy of the referenced byte sequence.
func (h ReadOnly) Bytes() ([]byte, error) {
	v, err := h.typed(KindBytes)
	if err != nil {
		return nil, err
	}
	return v.b, nil
}

// Float64s returns a copy of the referenced float sequence.
func (h ReadOnly) Float64s() ([]float64, error) {
	v, err := h.typed(KindFloat64s)
	if err != nil {
		return nil, err
	}
	return v.fs, nil
}

// typed loads the value after checking it has kind k. Load already copies
// sequence kinds.
func (h ReadOnly) typed(k Kind) (Value, error) {
	if !h.ref.IsBound() {
		return Value{}, ErrUnbound
	}
	if h.ref.kind != k {
		return Value{}, mismatch(k, h.ref.kind)
	}
	return h.ref.Load()
}

// ReadWrite is a ReadOnly handle that can also write the referenced slot.
// Writes land in storage immediately; the owning component sees them on its
// next access.
type ReadWrite struct {
	ReadOnly
}

// NewReadWrite creates a read-write handle. Pass the zero Ref for an unbound
// handle.
func NewReadWrite(name, interfaceName string, ref Ref) ReadWrite {
	return ReadWrite{ReadOnly: NewReadOnly(name, interfaceName, ref)}
}

// SetValue writes v. Its kind must match the handle kind.
func (h ReadWrite) SetValue(v Value) error {
	if !h.ref.IsBound() {
		return ErrUnbound
	}
	if v.kind != h.ref.kind {
		return mismatch(h.ref.kind, v.kind)
	}
	return h.ref.Store(v)
}

// SetFloat64 writes a float64.
func (h ReadWrite) SetFloat64(f float64) error { return h.SetValue(Float64(f)) }

// SetInt32 writes an int32.
func (h ReadWrite) SetInt32(i int32) error { return h.SetValue(Int32(i)) }

// SetUint32 writes a uint32.
func (h ReadWrite) SetUint32(u uint32) error { return h.SetValue(Uint32(u)) }

// SetBytes writes a byte sequence.
func (h ReadWrite) SetBytes(b []byte) error { return h.SetValue(Bytes(b)) }

// SetFloat64s writes a float sequence.
func (h ReadWrite) SetFloat64s(fs []float64) error { return h.SetValue(Float64s(fs)) }
