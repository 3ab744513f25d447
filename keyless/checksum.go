package keyless

import (
	"crypto/subtle"

	"golang.org/x/crypto/blake2b"
)

// Hash256 is the checksum hash: unkeyed Blake2b with a 32-byte digest.
func Hash256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// checksum returns the checksum fragment for openPart: the digest with its
// first len(openPart) bytes dropped.
func checksum(openPart []byte) []byte {
	sum := Hash256(openPart)
	return sum[len(openPart):]
}

// seal writes openPart followed by its checksum fragment into an Account.
func seal(openPart []byte) Account {
	var a Account
	n := copy(a[:], openPart)
	copy(a[n:], checksum(openPart))
	return a
}

// verify reports whether the bytes after the first openPartSize bytes of a are
// the checksum fragment of that open part.
func verify(a *Account, openPartSize int) bool {
	return subtle.ConstantTimeCompare(a[openPartSize:], checksum(a[:openPartSize])) == 1
}
