package types

import (
	"math"
	"strings"
	"time"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/errors"
)

// Type describes one registered chain type: dynamic construction from a
// native Go value and decoding from bytes. Used by ABI-driven serialization
// where field types arrive as strings at runtime.
type Type struct {
	Name   string
	New    func(native any) (eospyo.Value, error)
	Decode func(data []byte) (eospyo.Value, int, error)
}

// registry is built once here and never mutated at runtime; lookups are
// safe without coordination.
var registry = buildRegistry()

func buildRegistry() map[string]Type {
	entries := []Type{
		{
			Name: "bool",
			New: func(native any) (eospyo.Value, error) {
				b, ok := native.(bool)
				if !ok {
					return nil, badNative("bool", native)
				}
				return NewBool(b), nil
			},
			Decode: liftDecode(DecodeBool),
		},
		{
			Name: "int8",
			New: func(native any) (eospyo.Value, error) {
				n, err := nativeInt("int8", native)
				if err != nil {
					return nil, err
				}
				return NewInt8(n)
			},
			Decode: liftDecode(DecodeInt8),
		},
		{
			Name: "uint8",
			New: func(native any) (eospyo.Value, error) {
				n, err := nativeInt("uint8", native)
				if err != nil {
					return nil, err
				}
				return NewUint8(n)
			},
			Decode: liftDecode(DecodeUint8),
		},
		{
			Name: "uint16",
			New: func(native any) (eospyo.Value, error) {
				n, err := nativeInt("uint16", native)
				if err != nil {
					return nil, err
				}
				return NewUint16(n)
			},
			Decode: liftDecode(DecodeUint16),
		},
		{
			Name: "uint32",
			New: func(native any) (eospyo.Value, error) {
				n, err := nativeInt("uint32", native)
				if err != nil {
					return nil, err
				}
				return NewUint32(n)
			},
			Decode: liftDecode(DecodeUint32),
		},
		{
			Name: "uint64",
			New: func(native any) (eospyo.Value, error) {
				n, err := nativeUint("uint64", native)
				if err != nil {
					return nil, err
				}
				return NewUint64(n), nil
			},
			Decode: liftDecode(DecodeUint64),
		},
		{
			Name: "varuint32",
			New: func(native any) (eospyo.Value, error) {
				n, err := nativeUint("varuint32", native)
				if err != nil {
					return nil, err
				}
				return NewVaruint32(n)
			},
			Decode: liftDecode(DecodeVaruint32),
		},
		{
			Name: "string",
			New: func(native any) (eospyo.Value, error) {
				s, ok := native.(string)
				if !ok {
					return nil, badNative("string", native)
				}
				return NewString(s)
			},
			Decode: liftDecode(DecodeString),
		},
		{
			Name: "bytes",
			New: func(native any) (eospyo.Value, error) {
				switch b := native.(type) {
				case []byte:
					return NewBytes(b), nil
				case string:
					return NewBytes([]byte(b)), nil
				}
				return nil, badNative("bytes", native)
			},
			Decode: liftDecode(DecodeBytes),
		},
		{
			Name: "name",
			New: func(native any) (eospyo.Value, error) {
				s, ok := native.(string)
				if !ok {
					return nil, badNative("name", native)
				}
				return NewName(s)
			},
			Decode: liftDecode(DecodeName),
		},
		{
			Name: "symbol",
			New: func(native any) (eospyo.Value, error) {
				s, ok := native.(string)
				if !ok {
					return nil, badNative("symbol", native)
				}
				return NewSymbolFromString(s)
			},
			Decode: liftDecode(DecodeSymbol),
		},
		{
			Name: "asset",
			New: func(native any) (eospyo.Value, error) {
				s, ok := native.(string)
				if !ok {
					return nil, badNative("asset", native)
				}
				return NewAsset(s)
			},
			Decode: liftDecode(DecodeAsset),
		},
		{
			Name: "unixtimestamp",
			New: func(native any) (eospyo.Value, error) {
				switch t := native.(type) {
				case time.Time:
					return NewUnixTimestamp(t)
				case string:
					parsed, err := time.Parse(time.RFC3339, t)
					if err != nil {
						return nil, errors.Format("unixtimestamp", t, "expected an RFC 3339 timestamp")
					}
					return NewUnixTimestamp(parsed)
				}
				return nil, badNative("unixtimestamp", native)
			},
			Decode: liftDecode(DecodeUnixTimestamp),
		},
	}

	m := make(map[string]Type, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

// FromString resolves a chain type by name, case-insensitively.
func FromString(name string) (Type, error) {
	t, ok := registry[strings.ToLower(name)]
	if !ok {
		return Type{}, errors.UnknownType(name, RegisteredNames())
	}
	return t, nil
}

// RegisteredNames returns the names of all registered types.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// liftDecode adapts a concrete decode function to the registry's
// eospyo.Value signature.
func liftDecode[T eospyo.Value](decode func([]byte) (T, int, error)) func([]byte) (eospyo.Value, int, error) {
	return func(data []byte) (eospyo.Value, int, error) {
		v, n, err := decode(data)
		if err != nil {
			return nil, 0, err
		}
		return v, n, nil
	}
}

func badNative(typeName string, native any) error {
	return errors.New(errors.PhaseValidate, errors.KindFormat).
		Type(typeName).
		Value(native).
		Detail("cannot construct %s from Go value of type %T", typeName, native).
		Build()
}

// nativeInt coerces the numeric representations a JSON or Go caller may
// supply into an int64, rejecting fractional floats.
func nativeInt(typeName string, native any) (int64, error) {
	switch n := native.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, badNative(typeName, native)
		}
		return int64(n), nil
	}
	return 0, badNative(typeName, native)
}

// nativeUint is nativeInt for the full unsigned 64-bit domain.
func nativeUint(typeName string, native any) (uint64, error) {
	switch n := native.(type) {
	case uint64:
		return n, nil
	case uint:
		return uint64(n), nil
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, badNative(typeName, native)
		}
		return uint64(n), nil
	default:
		v, err := nativeInt(typeName, native)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, errors.Range(typeName, v, 0, uint64(1<<64-1))
		}
		return uint64(v), nil
	}
}
