package keyless

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// AccountSize is the size of an account identifier in bytes.
const AccountSize = 32

// Account is an opaque 32-byte account identifier, keyless or regular.
//
// Account is a value type; copies never alias each other.
type Account [AccountSize]byte

// NewAccount creates an Account from raw bytes.
// Use for untrusted input (ledger reads, network, files).
func NewAccount(data []byte) (Account, error) {
	var a Account
	if len(data) != AccountSize {
		return a, newError(KindAccount, "KEYLESS-ACC-001", fmt.Sprintf("account must be %d bytes, got %d", AccountSize, len(data)))
	}
	copy(a[:], data)
	return a, nil
}

// MustNewAccount creates an Account, panicking if invalid.
// Use only for trusted internal data.
func MustNewAccount(data []byte) Account {
	a, err := NewAccount(data)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAccountHex parses a 64-character hex account, with or without a 0x prefix.
func ParseAccountHex(s string) (Account, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Account{}, wrapError(KindAccount, "KEYLESS-ACC-002", "invalid account hex", err)
	}
	return NewAccount(b)
}

// Bytes returns a copy of the account bytes.
func (a Account) Bytes() []byte {
	out := make([]byte, AccountSize)
	copy(out, a[:])
	return out
}

// Hex returns the lowercase hex encoding without prefix.
func (a Account) Hex() string {
	return hex.EncodeToString(a[:])
}

// String returns the 0x-prefixed hex encoding.
func (a Account) String() string {
	return "0x" + a.Hex()
}

func (a Account) Equal(other Account) bool {
	return a == other
}

// Compare orders accounts byte-wise, like bytes.Compare.
func (a Account) Compare(other Account) int {
	return bytes.Compare(a[:], other[:])
}

// Tag returns the byte at TagOffset. It says nothing about validity on its own.
func (a Account) Tag() byte {
	return a[TagOffset]
}
