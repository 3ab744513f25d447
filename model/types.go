package model

type ComplianceMode string

const (
	CompliancePermissive ComplianceMode = "permissive"
	ComplianceStrict     ComplianceMode = "strict"
)

// Address type names, as produced by keyless.AddressType.String.
const (
	TypeRegular       = "Regular"
	TypeAppAgent      = "AppAgent"
	TypeTransactional = "Transactional"
	TypeNamed         = "Named"
)

// EncodeRequest asks for the address of one keyless account.
//
// TAID is required for Transactional, AddressName for Named. A nil
// SS58Format selects the default network format.
type EncodeRequest struct {
	AddressType string  `json:"addressType"`
	AppAgentID  uint32  `json:"appAgentId"`
	TAID        *uint32 `json:"taId,omitempty"`
	AddressName string  `json:"addressName,omitempty"`
	SS58Format  *uint16 `json:"ss58Format,omitempty"`
}

// DecodeRequest asks for the classification of an address.
//
// When ExpectType is set, a well-formed address of any other type is a
// WRONG_VARIANT error.
type DecodeRequest struct {
	Address    string         `json:"address"`
	SS58Format *uint16        `json:"ss58Format,omitempty"`
	Compliance ComplianceMode `json:"compliance,omitempty"`
	ExpectType string         `json:"expectType,omitempty"`
}

// AddressInfo is the JSON view of a classified account.
type AddressInfo struct {
	AccountID   string  `json:"accountId"`
	Address     string  `json:"address"`
	SS58Format  uint16  `json:"ss58Format"`
	AddressType string  `json:"addressType"`
	AppAgentID  *uint32 `json:"appAgentId,omitempty"`
	TAID        *uint32 `json:"taId,omitempty"`
	AddressName *string `json:"addressName,omitempty"`
	CID         string  `json:"cid"`
	Keyless     bool    `json:"keyless"`
}
