// Command keyless_vector_gen regenerates testdata/conformance/keyless/vectors.json.
//
//	go run ./internal/tools/keyless_vector_gen -out testdata/conformance/keyless/vectors.json
//	go run ./internal/tools/keyless_vector_gen -check
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/traittech/trait-keyless/address"
	"github.com/traittech/trait-keyless/cidutil"
	"github.com/traittech/trait-keyless/internal/testkit"
	"github.com/traittech/trait-keyless/keyless"
	"github.com/traittech/trait-keyless/ss58"
)

var formats = []uint16{ss58.FormatGeneric, ss58.FormatTraitAssetHub}

func vector(name string, a keyless.Account) (testkit.Vector, error) {
	info := keyless.DecodeAccount(a)
	v := testkit.Vector{
		Name:        name,
		AddressType: info.Type.String(),
		AccountID:   a.String(),
		SS58:        make(map[string]string, len(formats)),
		CID:         cidutil.AccountCIDString(a),
	}
	if info.AppAgentID != nil {
		id := uint32(*info.AppAgentID)
		v.AppAgentID = &id
	}
	if info.TransactionalID != nil {
		ta := uint32(*info.TransactionalID)
		v.TAID = &ta
	}
	if info.Name != nil {
		n := info.Name.String()
		v.AddressName = &n
	}
	for _, f := range formats {
		s, err := address.EncodeAccount(a, address.WithFormat(f))
		if err != nil {
			return v, fmt.Errorf("%s: %w", name, err)
		}
		v.SS58[strconv.Itoa(int(f))] = s
	}
	return v, nil
}

func build() (testkit.File, error) {
	tamperedAppAgent := keyless.EncodeAppAgent(123)
	tamperedAppAgent[31] ^= 1
	tamperedNamed := keyless.EncodeNamed(123, keyless.MustAddressName("example123"))
	tamperedNamed[5] = 'E'

	cases := []struct {
		name string
		acc  keyless.Account
	}{
		{"app_agent_123", keyless.EncodeAppAgent(123)},
		{"app_agent_123456789", keyless.EncodeAppAgent(123456789)},
		{"app_agent_0", keyless.EncodeAppAgent(0)},
		{"app_agent_max", keyless.EncodeAppAgent(0xffffffff)},
		{"transactional_123_456", keyless.EncodeTransactional(123, 456)},
		{"transactional_123456789_987654321", keyless.EncodeTransactional(123456789, 987654321)},
		{"transactional_1_0", keyless.EncodeTransactional(1, 0)},
		{"transactional_max", keyless.EncodeTransactional(0xffffffff, 0xffffffff)},
		{"named_123_example123", keyless.EncodeNamed(123, keyless.MustAddressName("example123"))},
		{"named_123456789_test123456", keyless.EncodeNamed(123456789, keyless.MustAddressName("test123456"))},
		{"named_1_hashes", keyless.EncodeNamed(1, keyless.MustAddressName("##########"))},
		{"regular_zero", keyless.Account{}},
		{"regular_tampered_app_agent", tamperedAppAgent},
		{"regular_tampered_named", tamperedNamed},
	}

	f := testkit.File{Suite: "trait-keyless-1", Hash: "blake2b-256"}
	for _, c := range cases {
		v, err := vector(c.name, c.acc)
		if err != nil {
			return f, err
		}
		f.Vectors = append(f.Vectors, v)
	}
	return f, nil
}

func render() ([]byte, error) {
	f, err := build()
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("keyless_vector_gen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var outPath string
	var check bool
	fs.StringVar(&outPath, "out", "", "Write vectors to this file instead of stdout")
	fs.BoolVar(&check, "check", false, "Compare against the committed vectors file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	b, err := render()
	if err != nil {
		fmt.Fprintf(errOut, "generate: %v\n", err)
		return 1
	}

	switch {
	case check:
		want, err := os.ReadFile(testkit.VectorsPath())
		if err != nil {
			fmt.Fprintf(errOut, "read vectors: %v\n", err)
			return 1
		}
		if !bytes.Equal(b, want) {
			fmt.Fprintln(errOut, "vectors are stale; regenerate with -out")
			return 1
		}
		fmt.Fprintln(out, "OK")
	case outPath != "":
		if err := os.WriteFile(outPath, b, 0o644); err != nil {
			fmt.Fprintf(errOut, "write %s: %v\n", outPath, err)
			return 1
		}
	default:
		_, _ = out.Write(b)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
