package handle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name, iface, want string
	}{
		{"joint1", "position", "joint1/position"},
		{"joint1", "velocity", "joint1/velocity"},
		{"arm/wrist", "effort", "arm/wrist/effort"},
		{"", "status", "/status"},
	}

	store := NewStore()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			bound := NewReadOnly(tt.name, tt.iface, store.Float64(0))
			unbound := NewReadOnly(tt.name, tt.iface, Ref{})
			assert.Equal(t, tt.want, bound.FullName())
			assert.Equal(t, tt.want, unbound.FullName())
			assert.Equal(t, tt.name, bound.Name())
			assert.Equal(t, tt.iface, bound.InterfaceName())
		})
	}
}

func TestUnboundHandle(t *testing.T) {
	h := NewReadWrite("joint1", "some_unlisted_interface", Ref{})

	assert.False(t, h.IsBound())
	assert.Equal(t, KindNone, h.Kind())

	_, err := h.Value()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = h.Float64()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = h.Int32()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = h.Uint32()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = h.Bytes()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = h.Float64s()
	assert.ErrorIs(t, err, ErrUnbound)

	assert.ErrorIs(t, h.SetFloat64(1), ErrUnbound)
	assert.ErrorIs(t, h.SetFloat64s([]float64{1}), ErrUnbound)
}

func TestReadWriteRoundTrip(t *testing.T) {
	store := NewStore()

	t.Run("Float64", func(t *testing.T) {
		h := NewReadWrite("j", "position", store.Float64(0))
		require.NoError(t, h.SetFloat64(1.25))
		got, err := h.Float64()
		require.NoError(t, err)
		assert.Equal(t, 1.25, got)
	})

	t.Run("Int32", func(t *testing.T) {
		h := NewReadWrite("j", "mode", store.Int32(0))
		require.NoError(t, h.SetInt32(-7))
		got, err := h.Int32()
		require.NoError(t, err)
		assert.Equal(t, int32(-7), got)
	})

	t.Run("Uint32", func(t *testing.T) {
		h := NewReadWrite("j", "status_word", store.Uint32(0))
		require.NoError(t, h.SetUint32(0xdeadbeef))
		got, err := h.Uint32()
		require.NoError(t, err)
		assert.Equal(t, uint32(0xdeadbeef), got)
	})

	t.Run("Bytes", func(t *testing.T) {
		h := NewReadWrite("j", "raw", store.Bytes(nil))
		in := []byte{1, 2, 3}
		require.NoError(t, h.SetBytes(in))
		in[0] = 9 // caller's slice must not alias storage
		got, err := h.Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, got)
	})

	t.Run("Float64s", func(t *testing.T) {
		h := NewReadWrite("j", "trajectory", store.Float64s(nil))
		require.NoError(t, h.SetFloat64s([]float64{0.5, 1.5}))
		got, err := h.Float64s()
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 1.5}, got)

		got[0] = 42
		again, err := h.Float64s()
		require.NoError(t, err)
		assert.Equal(t, 0.5, again[0])
	})
}

func TestKindMismatch(t *testing.T) {
	store := NewStore()
	h := NewReadWrite("j", "position", store.Float64(3))

	_, err := h.Int32()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = h.Float64s()
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.ErrorIs(t, h.SetFloat64s([]float64{1}), ErrKindMismatch)
	assert.ErrorIs(t, h.SetUint32(1), ErrKindMismatch)

	// The slot still holds its original value.
	got, err := h.Float64()
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestNonScalarHasNoScalarFallback(t *testing.T) {
	store := NewStore()
	h := NewReadOnly("j", "samples", store.Float64s([]float64{1, 2}))

	_, err := h.Float64()
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Equal(t, KindFloat64s, h.Kind())
}

func TestWritesVisibleToOwner(t *testing.T) {
	store := NewStore()
	ref := store.Float64(0)
	h := NewReadWrite("j", "velocity", ref)

	require.NoError(t, h.SetFloat64(5))
	got, err := ref.LoadFloat64()
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestReleasedStore(t *testing.T) {
	store := NewStore()
	h := NewReadWrite("j", "position", store.Float64(1))

	store.Release()
	assert.True(t, store.Released())
	assert.True(t, h.IsBound())

	_, err := h.Float64()
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, h.SetFloat64(2), ErrReleased)
}

func TestAllocNoneIsUnbound(t *testing.T) {
	store := NewStore()
	ref := store.Alloc(Value{})
	assert.False(t, ref.IsBound())
	assert.Equal(t, 0, store.Len())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "none"},
		{KindFloat64, "float64"},
		{KindInt32, "int32"},
		{KindUint32, "uint32"},
		{KindBytes, "bytes"},
		{KindFloat64s, "float64[]"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindFloat64, false},
		{"double", KindFloat64, false},
		{"int", KindInt32, false},
		{"uint32", KindUint32, false},
		{"bytes", KindBytes, false},
		{"double_array", KindFloat64s, false},
		{"quaternion", KindNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrKindMismatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind Kind
		in   string
		want Value
	}{
		{KindFloat64, "1.5", Float64(1.5)},
		{KindInt32, "-12", Int32(-12)},
		{KindUint32, "0x10", Uint32(16)},
		{KindBytes, "0a0b", Bytes([]byte{0x0a, 0x0b})},
		{KindFloat64s, "[1, 2.5]", Float64s([]float64{1, 2.5})},
		{KindFloat64s, "[]", Float64s([]float64{})},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}

	_, err := ParseValue(KindInt32, "nope")
	assert.Error(t, err)
	_, err = ParseValue(KindNone, "1")
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "1.5", Float64(1.5).String())
	assert.Equal(t, "-3", Int32(-3).String())
	assert.Equal(t, "7", Uint32(7).String())
	assert.Equal(t, "0102", Bytes([]byte{1, 2}).String())
	assert.Equal(t, "[1,2.5]", Float64s([]float64{1, 2.5}).String())
	assert.Equal(t, "none", Value{}.String())
}
