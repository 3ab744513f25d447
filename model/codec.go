package model

import (
	"github.com/traittech/trait-keyless/address"
	"github.com/traittech/trait-keyless/cidutil"
	"github.com/traittech/trait-keyless/compliance"
	"github.com/traittech/trait-keyless/keyless"
	"github.com/traittech/trait-keyless/ss58"
)

// Encode builds the keyless account described by req and returns its view.
func Encode(req EncodeRequest) (*AddressInfo, error) {
	id := keyless.AppAgentID(req.AppAgentID)

	var acc keyless.Account
	switch req.AddressType {
	case TypeAppAgent:
		acc = keyless.EncodeAppAgent(id)
	case TypeTransactional:
		if req.TAID == nil {
			return nil, NewError(ErrInvalidRequest, "transactional address requires taId")
		}
		acc = keyless.EncodeTransactional(id, keyless.TransactionalID(*req.TAID))
	case TypeNamed:
		name, err := keyless.ParseAddressName(req.AddressName)
		if err != nil {
			return nil, mapErr(err)
		}
		acc = keyless.EncodeNamed(id, name)
	case "":
		return nil, NewError(ErrInvalidRequest, "missing addressType")
	default:
		return nil, NewError(ErrInvalidRequest, "invalid addressType "+req.AddressType)
	}

	format := formatOf(req.SS58Format)
	text, err := address.EncodeAccount(acc, address.WithFormat(format))
	if err != nil {
		return nil, mapErr(err)
	}
	info := FromAddressInfo(keyless.DecodeAccount(acc), text, format)
	return &info, nil
}

// Decode parses and classifies req.Address.
func Decode(req DecodeRequest) (*AddressInfo, error) {
	mode, err := toCompliance(req.Compliance)
	if err != nil {
		return nil, err
	}
	switch req.ExpectType {
	case "", TypeRegular, TypeAppAgent, TypeTransactional, TypeNamed:
	default:
		return nil, NewError(ErrInvalidRequest, "invalid expectType "+req.ExpectType)
	}

	format := formatOf(req.SS58Format)
	decoded, err := address.Decode(req.Address, address.WithFormat(format), address.WithCompliance(mode))
	if err != nil {
		return nil, mapErr(err)
	}
	if req.ExpectType != "" && decoded.Type.String() != req.ExpectType {
		return nil, NewError(ErrWrongVariant, "expected "+req.ExpectType+" address, got "+decoded.Type.String())
	}

	// Hex input carries no text address; report the canonical SS58 form.
	text, err := address.EncodeAccount(decoded.Account, address.WithFormat(format))
	if err != nil {
		return nil, mapErr(err)
	}
	info := FromAddressInfo(decoded.AddressInfo, text, format)
	return &info, nil
}

// FromAddressInfo projects a classified account onto its JSON view.
func FromAddressInfo(ai keyless.AddressInfo, text string, format uint16) AddressInfo {
	out := AddressInfo{
		AccountID:   ai.Account.String(),
		Address:     text,
		SS58Format:  format,
		AddressType: ai.Type.String(),
		CID:         cidutil.AccountCIDString(ai.Account),
		Keyless:     ai.IsKeyless(),
	}
	if ai.AppAgentID != nil {
		v := uint32(*ai.AppAgentID)
		out.AppAgentID = &v
	}
	if ai.TransactionalID != nil {
		v := uint32(*ai.TransactionalID)
		out.TAID = &v
	}
	if ai.Name != nil {
		v := ai.Name.String()
		out.AddressName = &v
	}
	return out
}

func formatOf(f *uint16) uint16 {
	if f == nil {
		return ss58.FormatTraitAssetHub
	}
	return *f
}

func toCompliance(m ComplianceMode) (compliance.Mode, error) {
	mode, err := compliance.ParseMode(string(m))
	if err != nil {
		return compliance.Permissive, NewError(ErrInvalidRequest, "invalid compliance mode")
	}
	return mode, nil
}
