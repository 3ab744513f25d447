// Package keyless encodes and decodes keyless account identifiers.
//
// A keyless account is a 32-byte identifier derived from small numeric or
// string identifiers instead of a key pair. Its first bytes (the open part)
// carry the identifiers and a type tag at offset 4; the remaining bytes are a
// Blake2b-256 checksum of the open part, truncated by dropping the first
// len(openPart) bytes of the digest.
//
// Layouts:
//
//	AppAgent       [0..4) AppAgentID LE | [4] 1 | [5..32)  checksum
//	Transactional  [0..4) AppAgentID LE | [4] 2 | [5..9)   TransactionalID LE | [9..32)  checksum
//	Named          [0..4) AppAgentID LE | [4] 3 | [5..15)  AddressName        | [15..32) checksum
//
// Any other 32 bytes, including a recognised tag with a checksum that does
// not verify, classify as Regular. A failed checksum is not an error.
//
// All functions are pure and safe for concurrent use.
package keyless
