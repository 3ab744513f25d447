package keyless

import "fmt"

// AddressNameSize is the fixed length of an AddressName.
const AddressNameSize = 10

// AddressName is a 10-byte ASCII name restricted to [0-9a-zA-Z#-].
//
// The zero value is not a valid name; obtain one through NewAddressName.
type AddressName [AddressNameSize]byte

// NewAddressName validates input and returns it as an AddressName.
func NewAddressName(input []byte) (AddressName, error) {
	var n AddressName
	if len(input) != AddressNameSize {
		return n, newError(KindName, "KEYLESS-NAME-001", fmt.Sprintf("address name must be exactly %d bytes long, got %d", AddressNameSize, len(input)))
	}
	for i, b := range input {
		if !isNameByte(b) {
			return n, newError(KindName, "KEYLESS-NAME-002", fmt.Sprintf("address name contains invalid character %q at offset %d", b, i))
		}
	}
	copy(n[:], input)
	return n, nil
}

// ParseAddressName is NewAddressName for string input.
func ParseAddressName(s string) (AddressName, error) {
	return NewAddressName([]byte(s))
}

// MustAddressName creates an AddressName, panicking if invalid.
func MustAddressName(s string) AddressName {
	n, err := ParseAddressName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Bytes returns a copy of the name bytes.
func (n AddressName) Bytes() []byte {
	out := make([]byte, AddressNameSize)
	copy(out, n[:])
	return out
}

func (n AddressName) String() string {
	return string(n[:])
}

func isNameByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
	case b >= 'a' && b <= 'z':
	case b >= 'A' && b <= 'Z':
	case b == '#' || b == '-':
	default:
		return false
	}
	return true
}
