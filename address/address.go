// Package address exposes keyless accounts as SS58 text addresses.
//
// It layers the ss58 codec over package keyless: encoders return the SS58
// string of a keyless account, decoders parse an SS58 string (or, in
// permissive mode, a 0x-prefixed hex account id) and classify the account.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/traittech/trait-keyless/compliance"
	"github.com/traittech/trait-keyless/keyless"
	"github.com/traittech/trait-keyless/ss58"
)

// ErrInvalidAddress is wrapped by every error caused by malformed text input.
var ErrInvalidAddress = errors.New("address: invalid address")

// Info is the decoded view of a text address.
type Info struct {
	keyless.AddressInfo

	// Address is the text the caller supplied.
	Address string
	// Format is the SS58 network format the address was checked against.
	Format uint16
}

// EncodeAccount returns the SS58 address of any account, keyless or not.
func EncodeAccount(a keyless.Account, opts ...Option) (string, error) {
	o := buildOptions(opts)
	s, err := ss58.Encode(a[:], o.format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return s, nil
}

// EncodeAppAgent returns the SS58 address of the AppAgent account for id.
func EncodeAppAgent(id keyless.AppAgentID, opts ...Option) (string, error) {
	return EncodeAccount(keyless.EncodeAppAgent(id), opts...)
}

// EncodeTransactional returns the SS58 address of the Transactional account for (id, ta).
func EncodeTransactional(id keyless.AppAgentID, ta keyless.TransactionalID, opts ...Option) (string, error) {
	return EncodeAccount(keyless.EncodeTransactional(id, ta), opts...)
}

// EncodeNamed validates name and returns the SS58 address of the Named account for (id, name).
func EncodeNamed(id keyless.AppAgentID, name string, opts ...Option) (string, error) {
	n, err := keyless.ParseAddressName(name)
	if err != nil {
		return "", err
	}
	return EncodeAccount(keyless.EncodeNamed(id, n), opts...)
}

// ParseAccount turns text into an Account without classifying it.
func ParseAccount(text string, opts ...Option) (keyless.Account, error) {
	return parseAccount(text, buildOptions(opts))
}

func parseAccount(text string, o options) (keyless.Account, error) {
	if o.mode == compliance.Permissive {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return keyless.Account{}, fmt.Errorf("%w: %w", ErrInvalidAddress, ss58.ErrEmpty)
	}

	if strings.HasPrefix(text, "0x") {
		if o.mode == compliance.Strict {
			return keyless.Account{}, fmt.Errorf("%w: hex account ids are not accepted in strict mode", ErrInvalidAddress)
		}
		a, err := keyless.ParseAccountHex(text)
		if err != nil {
			return keyless.Account{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		return a, nil
	}

	payload, err := ss58.DecodeWithFormat(text, o.format)
	if err != nil {
		return keyless.Account{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	a, err := keyless.NewAccount(payload)
	if err != nil {
		return keyless.Account{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return a, nil
}

// Decode parses text and classifies the account it names.
//
// Malformed text is an error; a well-formed address of an ordinary account
// decodes successfully with Type keyless.Regular.
func Decode(text string, opts ...Option) (*Info, error) {
	o := buildOptions(opts)
	a, err := parseAccount(text, o)
	if err != nil {
		return nil, err
	}
	return &Info{
		AddressInfo: keyless.DecodeAccount(a),
		Address:     text,
		Format:      o.format,
	}, nil
}

// DecodeAppAgent returns the AppAgentID of an AppAgent text address.
func DecodeAppAgent(text string, opts ...Option) (keyless.AppAgentID, error) {
	a, err := ParseAccount(text, opts...)
	if err != nil {
		return 0, err
	}
	return keyless.DecodeAppAgent(a)
}

// DecodeTransactional returns the identifiers of a Transactional text address.
func DecodeTransactional(text string, opts ...Option) (keyless.AppAgentID, keyless.TransactionalID, error) {
	a, err := ParseAccount(text, opts...)
	if err != nil {
		return 0, 0, err
	}
	return keyless.DecodeTransactional(a)
}

// DecodeNamed returns the identifiers of a Named text address.
func DecodeNamed(text string, opts ...Option) (keyless.AppAgentID, keyless.AddressName, error) {
	a, err := ParseAccount(text, opts...)
	if err != nil {
		return 0, keyless.AddressName{}, err
	}
	return keyless.DecodeNamed(a)
}

// IsKeyless reports whether text parses and names a keyless account.
func IsKeyless(text string, opts ...Option) bool {
	a, err := ParseAccount(text, opts...)
	if err != nil {
		return false
	}
	return keyless.IsKeyless(a)
}
