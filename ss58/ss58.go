// Package ss58 implements the Substrate SS58 text address format.
//
// An SS58 address is base58(prefix || payload || checksum) where prefix
// encodes the network format in one or two bytes and checksum is a prefix of
// blake2b-512("SS58PRE" || prefix || payload).
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// FormatTraitAssetHub is the default network format for keyless addresses.
	FormatTraitAssetHub uint16 = 5335
	// FormatGeneric is the generic Substrate format.
	FormatGeneric uint16 = 42

	// MaxFormat is the largest encodable network format.
	MaxFormat uint16 = 16383
)

var checksumPrefix = []byte("SS58PRE")

var (
	ErrEmpty           = errors.New("ss58: empty address")
	ErrInvalidBase58   = errors.New("ss58: invalid base58")
	ErrInvalidLength   = errors.New("ss58: invalid address length")
	ErrInvalidChecksum = errors.New("ss58: invalid checksum")
	ErrReservedFormat  = errors.New("ss58: reserved format")
	ErrInvalidFormat   = errors.New("ss58: invalid format")
	ErrFormatMismatch  = errors.New("ss58: format mismatch")
)

func isReserved(format uint16) bool {
	return format == 46 || format == 47
}

// ValidFormat reports whether format can be used to encode an address.
func ValidFormat(format uint16) bool {
	return format <= MaxFormat && !isReserved(format)
}

func prefixBytes(format uint16) []byte {
	if format < 64 {
		return []byte{byte(format)}
	}
	return []byte{
		byte((format&0x00fc)>>2) | 0x40,
		byte(format>>8) | byte((format&0x0003)<<6),
	}
}

func checksumOf(data []byte) [blake2b.Size]byte {
	buf := make([]byte, 0, len(checksumPrefix)+len(data))
	buf = append(buf, checksumPrefix...)
	buf = append(buf, data...)
	return blake2b.Sum512(buf)
}

// Encode returns the SS58 address of payload under format.
//
// Payloads of 32 or 33 bytes (account ids, public keys) get a 2-byte
// checksum; 1, 2, 4 or 8 bytes (account indices) get a 1-byte checksum.
func Encode(payload []byte, format uint16) (string, error) {
	if !ValidFormat(format) {
		return "", fmt.Errorf("%w: %d", ErrInvalidFormat, format)
	}

	var checksumLen int
	switch len(payload) {
	case 32, 33:
		checksumLen = 2
	case 1, 2, 4, 8:
		checksumLen = 1
	default:
		return "", fmt.Errorf("%w: payload of %d bytes", ErrInvalidLength, len(payload))
	}

	data := append(prefixBytes(format), payload...)
	sum := checksumOf(data)
	return base58.Encode(append(data, sum[:checksumLen]...)), nil
}

// decodedFormat reads the network format from the leading bytes of a decoded address.
func decodedFormat(decoded []byte) (format uint16, prefixLen int, err error) {
	if len(decoded) == 0 {
		return 0, 0, ErrInvalidLength
	}
	if decoded[0]&0x40 != 0 {
		if len(decoded) < 2 {
			return 0, 0, ErrInvalidLength
		}
		format = uint16(decoded[0]&0x3f)<<2 | uint16(decoded[1]>>6) | uint16(decoded[1]&0x3f)<<8
		prefixLen = 2
	} else {
		format = uint16(decoded[0])
		prefixLen = 1
	}
	if isReserved(format) {
		return 0, 0, fmt.Errorf("%w: %d", ErrReservedFormat, format)
	}
	return format, prefixLen, nil
}

func checksumLength(decodedLen, prefixLen int) (int, error) {
	switch decodedLen {
	case 3, 4, 6, 10:
		return 1, nil
	case 5, 7, 11, 34 + prefixLen, 35 + prefixLen:
		return 2, nil
	case 8, 12:
		return 3, nil
	case 9, 13:
		return 4, nil
	case 14:
		return 5, nil
	case 15:
		return 6, nil
	case 16:
		return 7, nil
	case 17:
		return 8, nil
	default:
		return 0, ErrInvalidLength
	}
}

func decodeBase58(address string) ([]byte, error) {
	if address == "" {
		return nil, ErrEmpty
	}
	decoded, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase58, err)
	}
	return decoded, nil
}

// Decode verifies address and returns its network format and payload.
func Decode(address string) (uint16, []byte, error) {
	decoded, err := decodeBase58(address)
	if err != nil {
		return 0, nil, err
	}
	format, prefixLen, err := decodedFormat(decoded)
	if err != nil {
		return 0, nil, err
	}
	checksumLen, err := checksumLength(len(decoded), prefixLen)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %d decoded bytes", err, len(decoded))
	}

	body := decoded[:len(decoded)-checksumLen]
	sum := checksumOf(body)
	if !bytes.Equal(sum[:checksumLen], decoded[len(decoded)-checksumLen:]) {
		return 0, nil, ErrInvalidChecksum
	}

	payload := make([]byte, len(body)-prefixLen)
	copy(payload, body[prefixLen:])
	return format, payload, nil
}

// DecodeWithFormat is Decode that also requires the address to use format.
func DecodeWithFormat(address string, format uint16) ([]byte, error) {
	got, payload, err := Decode(address)
	if err != nil {
		return nil, err
	}
	if got != format {
		return nil, fmt.Errorf("%w: decoding %s: expected ss58Format %d, received %d", ErrFormatMismatch, address, format, got)
	}
	return payload, nil
}

// Format returns the network format of address without verifying its checksum.
func Format(address string) (uint16, error) {
	decoded, err := decodeBase58(address)
	if err != nil {
		return 0, err
	}
	format, _, err := decodedFormat(decoded)
	return format, err
}

// IsValid reports whether address decodes, and, when format is non-nil,
// whether it uses that format.
func IsValid(address string, format *uint16) bool {
	if format == nil {
		_, _, err := Decode(address)
		return err == nil
	}
	_, err := DecodeWithFormat(address, *format)
	return err == nil
}
