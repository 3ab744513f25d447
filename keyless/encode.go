package keyless

import "encoding/binary"

// EncodeAppAgent builds the AppAgent keyless account for id.
func EncodeAppAgent(id AppAgentID) Account {
	var open [AppAgentOpenPartSize]byte
	binary.LittleEndian.PutUint32(open[0:4], uint32(id))
	open[TagOffset] = TagAppAgent
	return seal(open[:])
}

// EncodeTransactional builds the Transactional keyless account for (id, ta).
func EncodeTransactional(id AppAgentID, ta TransactionalID) Account {
	var open [TransactionalOpenPartSize]byte
	binary.LittleEndian.PutUint32(open[0:4], uint32(id))
	open[TagOffset] = TagTransactional
	binary.LittleEndian.PutUint32(open[5:9], uint32(ta))
	return seal(open[:])
}

// EncodeNamed builds the Named keyless account for (id, name).
//
// name is validated at construction (NewAddressName), so encoding cannot fail.
func EncodeNamed(id AppAgentID, name AddressName) Account {
	var open [NamedOpenPartSize]byte
	binary.LittleEndian.PutUint32(open[0:4], uint32(id))
	open[TagOffset] = TagNamed
	copy(open[5:15], name[:])
	return seal(open[:])
}
