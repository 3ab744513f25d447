package keyless

import (
	"testing"

	"github.com/traittech/trait-keyless/internal/testkit"
)

func TestConformanceVectors_Accounts(t *testing.T) {
	for _, v := range testkit.LoadVectors(t) {
		acc, err := ParseAccountHex(v.AccountID)
		if err != nil {
			t.Fatalf("%s: ParseAccountHex: %v", v.Name, err)
		}

		info := DecodeAccount(acc)
		if info.Type.String() != v.AddressType {
			t.Fatalf("%s: type %s want %s", v.Name, info.Type, v.AddressType)
		}

		switch info.Type {
		case AppAgent:
			if got := EncodeAppAgent(AppAgentID(*v.AppAgentID)); got != acc {
				t.Fatalf("%s: EncodeAppAgent = %s want %s", v.Name, got, acc)
			}
		case Transactional:
			if got := EncodeTransactional(AppAgentID(*v.AppAgentID), TransactionalID(*v.TAID)); got != acc {
				t.Fatalf("%s: EncodeTransactional = %s want %s", v.Name, got, acc)
			}
			if *info.TransactionalID != TransactionalID(*v.TAID) {
				t.Fatalf("%s: decoded TA id %d want %d", v.Name, *info.TransactionalID, *v.TAID)
			}
		case Named:
			name, err := ParseAddressName(*v.AddressName)
			if err != nil {
				t.Fatalf("%s: ParseAddressName: %v", v.Name, err)
			}
			if got := EncodeNamed(AppAgentID(*v.AppAgentID), name); got != acc {
				t.Fatalf("%s: EncodeNamed = %s want %s", v.Name, got, acc)
			}
			if *info.Name != name {
				t.Fatalf("%s: decoded name %s want %s", v.Name, info.Name, name)
			}
		case Regular:
			if info.AppAgentID != nil || info.TransactionalID != nil || info.Name != nil {
				t.Fatalf("%s: Regular must have no identifiers", v.Name)
			}
			continue
		}

		if *info.AppAgentID != AppAgentID(*v.AppAgentID) {
			t.Fatalf("%s: decoded AppAgent id %d want %d", v.Name, *info.AppAgentID, *v.AppAgentID)
		}
	}
}
