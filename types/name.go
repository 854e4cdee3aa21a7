package types

import (
	"strings"

	"github.com/Fossilia/eospyo/errors"
	"github.com/Fossilia/eospyo/wire"
)

// nameCharmap maps each 5-bit symbol back to its character. Symbol 0 is the
// dot, 1-5 the digits, 6-31 the lowercase letters.
const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

// Name is a chain account or action identifier: up to 13 characters from
// ".a-z1-5", packed into 64 bits using 5-bit fields (4 bits for the 13th
// slot). Equality between names disregards dots, a chain rule: "a.b" and
// "ab" are the same account.
type Name string

// NewName validates s as a chain name. The empty name is allowed; any
// non-empty name needs at least one character that is not a dot. When the
// name is exactly 13 characters the last slot holds only 4 bits, so the
// final character is restricted to a-j or the dot.
func NewName(s string) (Name, error) {
	if len(s) > 13 {
		return "", errors.Pattern("name", s, "at most 13 characters")
	}
	nonDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.':
		case c >= 'a' && c <= 'z', c >= '1' && c <= '5':
			nonDot = true
		default:
			return "", errors.Pattern("name", s, "^[.a-z1-5]*$")
		}
	}
	if len(s) > 0 && !nonDot {
		return "", errors.Pattern("name", s, "at least one character in [a-z1-5]")
	}
	if len(s) == 13 {
		c := s[12]
		if c != '.' && (c < 'a' || c > 'j') {
			return "", errors.Pattern("name", s, "13th character in [a-j.]")
		}
	}
	return Name(s), nil
}

// Equal reports whether two names refer to the same identifier. Dots are
// ignored entirely; names differing only in dot padding are equal.
func (v Name) Equal(other Name) bool {
	strip := func(s Name) string {
		return strings.ReplaceAll(string(s), ".", "")
	}
	return strip(v) == strip(other)
}

// Uint64 returns the 64-bit packed form of the name. Characters fill 5-bit
// fields from the most-significant end; a 13th character occupies the low
// 4 bits.
func (v Name) Uint64() uint64 {
	var packed uint64
	for i := 0; i < len(v) && i < 12; i++ {
		packed |= uint64(nameCharSymbol(v[i])&0x1f) << (64 - 5*(i+1))
	}
	if len(v) == 13 {
		packed |= uint64(nameCharSymbol(v[12]) & 0x0f)
	}
	return packed
}

func nameCharSymbol(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 6
	case c >= '1' && c <= '5':
		return c - '1' + 1
	default:
		return 0
	}
}

func (v Name) Pack(w *wire.Writer) {
	w.WriteU64(v.Uint64())
}

func (v Name) Size() int { return 8 }

// NameFromUint64 unpacks the 64-bit form back into its textual name,
// stripping the dot padding.
func NameFromUint64(packed uint64) Name {
	var buf [13]byte
	tmp := packed
	for i := 0; i < 13; i++ {
		var idx uint64
		if i == 0 {
			idx = tmp & 0x0f
			tmp >>= 4
		} else {
			idx = tmp & 0x1f
			tmp >>= 5
		}
		buf[12-i] = nameCharmap[idx]
	}
	return Name(strings.Trim(string(buf[:]), "."))
}

// UnpackName reads 8 bytes and unpacks the 5-bit character fields.
func UnpackName(r *wire.Reader) (Name, error) {
	packed, err := r.ReadU64()
	if err != nil {
		return "", errors.Truncated("name", err)
	}
	return NameFromUint64(packed), nil
}

// DecodeName decodes a Name from the front of data.
func DecodeName(data []byte) (Name, int, error) {
	return decodeOne(data, UnpackName)
}
