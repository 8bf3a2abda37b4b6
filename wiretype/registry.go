// Package wiretype implements the UDF type registry: the static table that
// maps a UDF type mnemonic (s8, u16, u24, f, d, s, ...) to its wire width,
// its logical column type, and a little-endian decode function.
//
// Mnemonics resolve to a TypeDescriptor exactly once, at header-parse time
// (see the header package); the body parser never compares mnemonic
// strings, it only invokes the resolved TypeDescriptor.Decode closure.
package wiretype

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/udf/endian"
	"github.com/arloliu/udf/errs"
)

// Logical identifies the logical (Arrow-like) type a decoded axis value is
// represented as once it lands in a table column.
type Logical uint8

const (
	Int8 Logical = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	UTF8
)

func (l Logical) String() string {
	switch l {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case UTF8:
		return "utf8"
	default:
		return "unknown"
	}
}

// TypeDescriptor describes one UDF wire type: its mnemonic, its width in
// bytes on the wire, the logical type it decodes to, and the decode
// function itself.
//
// TypeDescriptor values are immutable and process-wide; the same
// descriptor is shared by every decoder instance decoding the same
// mnemonic.
type TypeDescriptor struct {
	Mnemonic  string
	WireWidth int
	Logical   Logical
	// Decode converts exactly WireWidth little-endian bytes into a scalar
	// value of the descriptor's Logical type (one of int8, uint8, int16,
	// uint16, int32, uint32, int64, uint64, float32, float64, or string).
	Decode func(b []byte) (any, error)
}

var engine = endian.GetLittleEndianEngine()

// decodeNulPaddedString decodes a fixed-width, NUL-padded UTF-8 field into
// the prefix preceding the first NUL byte.
func decodeNulPaddedString(b []byte) (any, error) {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		return string(b[:i]), nil
	}

	return string(b), nil
}

// registry is the authoritative UDF mnemonic table (spec §4.1), built once
// at package init and never mutated afterward.
var registry = map[string]TypeDescriptor{
	"s8": {
		Mnemonic: "s8", WireWidth: 1, Logical: Int8,
		Decode: func(b []byte) (any, error) { return int8(b[0]), nil },
	},
	"u8": {
		Mnemonic: "u8", WireWidth: 1, Logical: Uint8,
		Decode: func(b []byte) (any, error) { return b[0], nil },
	},
	"s16": {
		Mnemonic: "s16", WireWidth: 2, Logical: Int16,
		Decode: func(b []byte) (any, error) { return int16(engine.Uint16(b)), nil },
	},
	"u16": {
		Mnemonic: "u16", WireWidth: 2, Logical: Uint16,
		Decode: func(b []byte) (any, error) { return engine.Uint16(b), nil },
	},
	"s32": {
		Mnemonic: "s32", WireWidth: 4, Logical: Int32,
		Decode: func(b []byte) (any, error) { return int32(engine.Uint32(b)), nil },
	},
	// u24 has a 3-byte wire width but decodes into a uint32 by
	// zero-extending the missing most-significant byte (spec §4.1, §4.3).
	"u24": {
		Mnemonic: "u24", WireWidth: 3, Logical: Uint32,
		Decode: func(b []byte) (any, error) {
			var padded [4]byte
			copy(padded[:3], b)

			return engine.Uint32(padded[:]), nil
		},
	},
	"u32": {
		Mnemonic: "u32", WireWidth: 4, Logical: Uint32,
		Decode: func(b []byte) (any, error) { return engine.Uint32(b), nil },
	},
	"s64": {
		Mnemonic: "s64", WireWidth: 8, Logical: Int64,
		Decode: func(b []byte) (any, error) { return int64(engine.Uint64(b)), nil },
	},
	"u64": {
		Mnemonic: "u64", WireWidth: 8, Logical: Uint64,
		Decode: func(b []byte) (any, error) { return engine.Uint64(b), nil },
	},
	"f": {
		Mnemonic: "f", WireWidth: 4, Logical: Float32,
		Decode: func(b []byte) (any, error) { return math.Float32frombits(engine.Uint32(b)), nil },
	},
	"d": {
		Mnemonic: "d", WireWidth: 8, Logical: Float64,
		Decode: func(b []byte) (any, error) { return math.Float64frombits(engine.Uint64(b)), nil },
	},
	"s": {
		Mnemonic: "s", WireWidth: 16, Logical: UTF8,
		Decode: decodeNulPaddedString,
	},
	// st is a synonym of s (spec §4.1).
	"st": {
		Mnemonic: "st", WireWidth: 16, Logical: UTF8,
		Decode: decodeNulPaddedString,
	},
}

// Lookup resolves a UDF type mnemonic to its TypeDescriptor.
//
// Returns errs.ErrUnknownType, wrapped with the offending mnemonic, if no
// such type is registered.
func Lookup(mnemonic string) (TypeDescriptor, error) {
	desc, ok := registry[mnemonic]
	if !ok {
		return TypeDescriptor{}, fmt.Errorf("%w: %q", errs.ErrUnknownType, mnemonic)
	}

	return desc, nil
}
