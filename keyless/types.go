package keyless

// AppAgentID identifies an application agent.
type AppAgentID uint32

// TransactionalID identifies a transactional sub-address of an AppAgentID.
type TransactionalID uint32

// Layout constants. Offsets are byte offsets into an Account.
const (
	TagOffset = 4

	TagAppAgent      byte = 1
	TagTransactional byte = 2
	TagNamed         byte = 3

	AppAgentOpenPartSize      = 5
	TransactionalOpenPartSize = 9
	NamedOpenPartSize         = 15
)

// AddressType is the decoded kind of an Account.
type AddressType int

const (
	Regular AddressType = iota
	AppAgent
	Transactional
	Named
)

func (t AddressType) String() string {
	switch t {
	case Regular:
		return "Regular"
	case AppAgent:
		return "AppAgent"
	case Transactional:
		return "Transactional"
	case Named:
		return "Named"
	default:
		return "Unknown"
	}
}

// IsKeyless reports whether t is one of the keyless variants.
func (t AddressType) IsKeyless() bool {
	return t == AppAgent || t == Transactional || t == Named
}

// AddressInfo is the decoded view of an Account.
//
// Optional fields are nil when they do not apply to Type:
// AppAgentID is set for every keyless type, TransactionalID only for
// Transactional, Name only for Named.
type AddressInfo struct {
	Account         Account
	Type            AddressType
	AppAgentID      *AppAgentID
	TransactionalID *TransactionalID
	Name            *AddressName
}

// IsKeyless reports whether the decoded account is a keyless one.
func (i AddressInfo) IsKeyless() bool {
	return i.Type.IsKeyless()
}
