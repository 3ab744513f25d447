// Package cidutil maps keyless accounts to and from content identifiers.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/traittech/trait-keyless/keyless"
)

// Blake2b256 is the multihash code of a 32-byte Blake2b digest.
const Blake2b256 = multihash.BLAKE2B_MIN + 31

// AccountCID returns a CIDv1 using the "raw" multicodec and an identity
// multihash, so the account bytes are carried verbatim.
func AccountCID(a keyless.Account) cid.Cid {
	mh, err := multihash.Sum(a[:], multihash.IDENTITY, -1)
	if err != nil {
		// identity over 32 bytes cannot fail.
		panic(err)
	}
	return cid.NewCidV1(cid.Raw, mh)
}

// AccountCIDString returns the default (base32) text form of AccountCID.
func AccountCIDString(a keyless.Account) string {
	return AccountCID(a).String()
}

// ParseAccountCID reverses AccountCIDString.
func ParseAccountCID(s string) (keyless.Account, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return keyless.Account{}, fmt.Errorf("cidutil: decode %q: %w", s, err)
	}
	if c.Prefix().Codec != cid.Raw {
		return keyless.Account{}, fmt.Errorf("cidutil: codec 0x%x is not raw", c.Prefix().Codec)
	}
	dec, err := multihash.Decode(c.Hash())
	if err != nil {
		return keyless.Account{}, fmt.Errorf("cidutil: multihash: %w", err)
	}
	if dec.Code != multihash.IDENTITY {
		return keyless.Account{}, fmt.Errorf("cidutil: multihash %s is not identity", multihash.Codes[dec.Code])
	}
	return keyless.NewAccount(dec.Digest)
}

// OpenPartDigest returns the Blake2b-256 multihash of an open part. Its
// digest is the full hash whose tail seals a keyless account.
func OpenPartDigest(openPart []byte) (multihash.Multihash, error) {
	return multihash.Sum(openPart, Blake2b256, -1)
}
