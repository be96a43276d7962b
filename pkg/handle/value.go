package handle

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value or slot holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindFloat64
	KindInt32
	KindUint32
	KindBytes
	KindFloat64s
)

// String returns the kind name.
func (k Kind) String() string {
	names := []string{"none", "float64", "int32", "uint32", "bytes", "float64[]"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// ParseKind parses a kind name. Besides the names returned by String it
// accepts the data type spellings used in hardware descriptions. An empty
// string selects float64.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float64", "double":
		return KindFloat64, nil
	case "int32", "int":
		return KindInt32, nil
	case "uint32":
		return KindUint32, nil
	case "bytes", "byte_array":
		return KindBytes, nil
	case "float64[]", "double_array", "float64s":
		return KindFloat64s, nil
	default:
		return KindNone, fmt.Errorf("%w: unknown kind %q", ErrKindMismatch, s)
	}
}

// Value is a tagged variant holding exactly one of the supported kinds.
// The zero Value has KindNone.
type Value struct {
	kind Kind
	f    float64
	i    int32
	u    uint32
	b    []byte
	fs   []float64
}

// Float64 returns a float64 Value.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Int32 returns an int32 Value.
func Int32(v int32) Value { return Value{kind: KindInt32, i: v} }

// Uint32 returns a uint32 Value.
func Uint32(v uint32) Value { return Value{kind: KindUint32, u: v} }

// Bytes returns a byte sequence Value. The slice is copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, b: bytes.Clone(b)} }

// Float64s returns a float sequence Value. The slice is copied.
func Float64s(fs []float64) Value { return Value{kind: KindFloat64s, fs: slices.Clone(fs)} }

// Zero returns the zero value of the given kind.
func Zero(k Kind) Value {
	switch k {
	case KindFloat64, KindInt32, KindUint32:
		return Value{kind: k}
	case KindBytes:
		return Value{kind: k, b: []byte{}}
	case KindFloat64s:
		return Value{kind: k, fs: []float64{}}
	default:
		return Value{}
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsFloat64 returns the float64 variant.
func (v Value) AsFloat64() (float64, bool) { return v.f, v.kind == KindFloat64 }

// AsInt32 returns the int32 variant.
func (v Value) AsInt32() (int32, bool) { return v.i, v.kind == KindInt32 }

// AsUint32 returns the uint32 variant.
func (v Value) AsUint32() (uint32, bool) { return v.u, v.kind == KindUint32 }

// AsBytes returns a copy of the byte sequence variant.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return bytes.Clone(v.b), true
}

// AsFloat64s returns a copy of the float sequence variant.
func (v Value) AsFloat64s() ([]float64, bool) {
	if v.kind != KindFloat64s {
		return nil, false
	}
	return slices.Clone(v.fs), true
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindFloat64:
		return v.f == o.f
	case KindInt32:
		return v.i == o.i
	case KindUint32:
		return v.u == o.u
	case KindBytes:
		return bytes.Equal(v.b, o.b)
	case KindFloat64s:
		return slices.Equal(v.fs, o.fs)
	default:
		return true
	}
}

// String formats the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case KindUint32:
		return strconv.FormatUint(uint64(v.u), 10)
	case KindBytes:
		return fmt.Sprintf("%x", v.b)
	case KindFloat64s:
		parts := make([]string, len(v.fs))
		for i, f := range v.fs {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return "none"
	}
}

// ParseValue parses s as a value of kind k. Byte sequences are hex encoded;
// float sequences are comma separated, optionally wrapped in brackets.
func ParseValue(k Kind, s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch k {
	case KindFloat64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse float64 %q: %w", s, err)
		}
		return Float64(f), nil
	case KindInt32:
		i, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return Value{}, fmt.Errorf("parse int32 %q: %w", s, err)
		}
		return Int32(int32(i)), nil
	case KindUint32:
		u, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return Value{}, fmt.Errorf("parse uint32 %q: %w", s, err)
		}
		return Uint32(uint32(u)), nil
	case KindBytes:
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return Value{}, fmt.Errorf("parse bytes %q: %w", s, err)
		}
		return Value{kind: KindBytes, b: b}, nil
	case KindFloat64s:
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		fs := []float64{}
		if strings.TrimSpace(s) != "" {
			for _, part := range strings.Split(s, ",") {
				f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
				if err != nil {
					return Value{}, fmt.Errorf("parse float64[] %q: %w", s, err)
				}
				fs = append(fs, f)
			}
		}
		return Value{kind: KindFloat64s, fs: fs}, nil
	default:
		return Value{}, fmt.Errorf("%w: cannot parse kind %s", ErrKindMismatch, k)
	}
}
