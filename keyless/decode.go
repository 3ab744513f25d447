package keyless

import "encoding/binary"

// ids is the result of classify. Only the fields relevant to typ are set.
type ids struct {
	typ      AddressType
	appAgent AppAgentID
	ta       TransactionalID
	name     AddressName
}

// classify reads the tag byte, verifies the checksum of that single layout and
// extracts the identifiers. Unknown tags and checksum mismatches are Regular.
func classify(a *Account) ids {
	switch a[TagOffset] {
	case TagAppAgent:
		if verify(a, AppAgentOpenPartSize) {
			return ids{typ: AppAgent, appAgent: appAgentOf(a)}
		}
	case TagTransactional:
		if verify(a, TransactionalOpenPartSize) {
			return ids{
				typ:      Transactional,
				appAgent: appAgentOf(a),
				ta:       TransactionalID(binary.LittleEndian.Uint32(a[5:9])),
			}
		}
	case TagNamed:
		if verify(a, NamedOpenPartSize) {
			// A checksum can be computed over any bytes; only names the
			// encoder could have produced count as Named.
			name, err := NewAddressName(a[5:15])
			if err != nil {
				break
			}
			return ids{typ: Named, appAgent: appAgentOf(a), name: name}
		}
	}
	return ids{typ: Regular}
}

func appAgentOf(a *Account) AppAgentID {
	return AppAgentID(binary.LittleEndian.Uint32(a[0:4]))
}

// DecodeAccount classifies a and returns its decoded view. It never fails:
// anything that is not a valid keyless account is reported as Regular.
func DecodeAccount(a Account) AddressInfo {
	r := classify(&a)
	info := AddressInfo{Account: a, Type: r.typ}
	switch r.typ {
	case AppAgent:
		info.AppAgentID = &r.appAgent
	case Transactional:
		info.AppAgentID = &r.appAgent
		info.TransactionalID = &r.ta
	case Named:
		info.AppAgentID = &r.appAgent
		info.Name = &r.name
	}
	return info
}

// DecodeAppAgent returns the AppAgentID of an AppAgent keyless account.
func DecodeAppAgent(a Account) (AppAgentID, error) {
	r := classify(&a)
	if r.typ != AppAgent {
		return 0, wrongVariant("KEYLESS-VAR-001", "provided account is not an AppAgent keyless account")
	}
	return r.appAgent, nil
}

// DecodeTransactional returns the identifiers of a Transactional keyless account.
func DecodeTransactional(a Account) (AppAgentID, TransactionalID, error) {
	r := classify(&a)
	if r.typ != Transactional {
		return 0, 0, wrongVariant("KEYLESS-VAR-002", "provided account is not a Transactional keyless account")
	}
	return r.appAgent, r.ta, nil
}

// DecodeNamed returns the identifiers of a Named keyless account.
func DecodeNamed(a Account) (AppAgentID, AddressName, error) {
	r := classify(&a)
	if r.typ != Named {
		return 0, AddressName{}, wrongVariant("KEYLESS-VAR-003", "provided account is not a Named keyless account")
	}
	return r.appAgent, r.name, nil
}

// IsKeyless reports whether a is a valid keyless account of any variant.
func IsKeyless(a Account) bool {
	return classify(&a).typ != Regular
}
