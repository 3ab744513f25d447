package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/traittech/trait-keyless/config"
	"github.com/traittech/trait-keyless/model"
)

const (
	aaAddr   = "ttowKp8AmQuGfbBGikG2pbdYNnErhHRaLrdktJeZEfJVeVnTp"
	aaAddr42 = "5EqykH6EjAZ513RNK37NMagT2KPL4xr2vJXxGCRucbXqBSA7"
	aaHex    = "0x7b00000001293833058fc7db52fc03f6ce344bca98bd7825ff747743f1ff63e2"
	aaCID    = "bafkqaid3aaaaaajjhazqld6h3njpya7wzy2exsuyxv4cl73uo5b7d73d4i"
	taAddr   = "ttowKp8AmjjQh4GoN7xMiQWwVyyrU1Pu7GRf5HxFmV5t43TXG"
	nmAddr   = "ttowKp8Amrt2FQ2eNdsbMsW2EEeEsEmsT8KHLvPhVppp9zs8k"
	zeroAddr = "ttmA3vWpTpxT89bqqUasT6u2muJUiXABArqVStA8yVcwJ8vGS"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvSS58Format, "")
	t.Setenv(config.EnvCompliance, "")
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	if code, _, errOut := runCLI(t); code != 2 || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("no args: code=%d stderr=%q", code, errOut)
	}
	if code, out, _ := runCLI(t, "help"); code != 0 || !strings.Contains(out, "keyless encode") {
		t.Fatalf("help: code=%d stdout=%q", code, out)
	}
	if code, _, _ := runCLI(t, "frobnicate"); code != 2 {
		t.Fatalf("unknown command: code=%d", code)
	}
	if code, _, _ := runCLI(t, "--nope", "decode"); code != 2 {
		t.Fatalf("unknown global flag: code=%d", code)
	}
}

func TestEncode(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "app-agent", "--id", "123"}, aaAddr},
		{[]string{"encode", "app-agent", "--id", "123", "--format", "42"}, aaAddr42},
		{[]string{"encode", "app-agent", "--id", "123", "--hex"}, aaHex},
		{[]string{"encode", "transactional", "--id", "123", "--ta", "456"}, taAddr},
		{[]string{"encode", "named", "--id", "123", "--name", "example123"}, nmAddr},
	}
	for _, tc := range cases {
		code, out, errOut := runCLI(t, tc.args...)
		if code != 0 {
			t.Fatalf("%v: code=%d stderr=%q", tc.args, code, errOut)
		}
		if strings.TrimSpace(out) != tc.want {
			t.Fatalf("%v: got %q want %q", tc.args, out, tc.want)
		}
	}
}

func TestEncode_JSON(t *testing.T) {
	code, out, errOut := runCLI(t, "encode", "named", "--id", "123", "--name", "example123", "--json")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}
	var info model.AddressInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out)
	}
	if info.Address != nmAddr || info.AddressType != model.TypeNamed || info.AddressName == nil || *info.AddressName != "example123" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestEncode_Errors(t *testing.T) {
	cases := []struct {
		args []string
		code int
	}{
		{[]string{"encode"}, 2},
		{[]string{"encode", "regular", "--id", "1"}, 2},
		{[]string{"encode", "app-agent"}, 2},
		{[]string{"encode", "transactional", "--id", "1"}, 2},
		{[]string{"encode", "named", "--id", "1"}, 2},
		{[]string{"encode", "app-agent", "--id", "4294967296"}, 2},
		{[]string{"encode", "app-agent", "--id", "1", "--format", "70000"}, 2},
		{[]string{"encode", "app-agent", "--id", "1", "extra"}, 2},
		{[]string{"encode", "named", "--id", "1", "--name", "bad name!!"}, 1},
		{[]string{"encode", "app-agent", "--id", "1", "--format", "46"}, 1},
	}
	for _, tc := range cases {
		code, out, _ := runCLI(t, tc.args...)
		if code != tc.code {
			t.Fatalf("%v: code=%d want %d", tc.args, code, tc.code)
		}
		if out != "" {
			t.Fatalf("%v: unexpected stdout %q", tc.args, out)
		}
	}
}

func TestDecode_Text(t *testing.T) {
	code, out, errOut := runCLI(t, "decode", taAddr)
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}
	for _, want := range []string{"type: Transactional", "appAgentId: 123", "taId: 456", "address: " + taAddr} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "addressName") {
		t.Fatalf("unexpected addressName line:\n%s", out)
	}
}

func TestDecode_HexAndStrict(t *testing.T) {
	code, out, _ := runCLI(t, "decode", "--json", aaHex)
	if code != 0 {
		t.Fatalf("permissive hex: code=%d", code)
	}
	var info model.AddressInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if info.Address != aaAddr || info.CID != aaCID || !info.Keyless {
		t.Fatalf("unexpected info: %+v", info)
	}

	code, out, errOut := runCLI(t, "decode", "--strict", aaHex)
	if code != 1 || out != "" {
		t.Fatalf("strict hex: code=%d stdout=%q", code, out)
	}
	if !strings.Contains(errOut, "INVALID_ADDRESS") {
		t.Fatalf("expected logged error code, got %q", errOut)
	}
}

func TestDecode_FormatMismatch(t *testing.T) {
	if code, _, _ := runCLI(t, "decode", "--format", "42", aaAddr); code != 1 {
		t.Fatalf("format mismatch: code=%d", code)
	}
	if code, _, _ := runCLI(t, "decode", "--format", "42", aaAddr42); code != 0 {
		t.Fatalf("format 42: code=%d", code)
	}
	if code, _, _ := runCLI(t, "decode"); code != 2 {
		t.Fatalf("missing arg: code=%d", code)
	}
}

func TestCheck(t *testing.T) {
	code, out, _ := runCLI(t, "check", nmAddr)
	if code != 0 || strings.TrimSpace(out) != "keyless" {
		t.Fatalf("keyless: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "check", zeroAddr)
	if code != 1 || strings.TrimSpace(out) != "regular" {
		t.Fatalf("regular: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "check", "nonsense")
	if code != 1 || out != "" {
		t.Fatalf("invalid: code=%d out=%q", code, out)
	}
}

func TestCID(t *testing.T) {
	code, out, _ := runCLI(t, "cid", aaAddr)
	if code != 0 || strings.TrimSpace(out) != aaCID {
		t.Fatalf("cid: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "cid", "--parse", aaCID)
	if code != 0 || strings.TrimSpace(out) != aaAddr {
		t.Fatalf("cid --parse: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "cid", "--parse", "--hex", aaCID)
	if code != 0 || strings.TrimSpace(out) != aaHex {
		t.Fatalf("cid --parse --hex: code=%d out=%q", code, out)
	}
	if code, _, _ := runCLI(t, "cid", "--hex", aaAddr); code != 2 {
		t.Fatalf("--hex without --parse: code=%d", code)
	}
	if code, _, _ := runCLI(t, "cid", "--parse", "bogus"); code != 1 {
		t.Fatalf("bad cid: code=%d", code)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "keyless.json")
	if err := os.WriteFile(p, []byte(`{"ss58_format": 42, "output": "json"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, out, errOut := runCLI(t, "--config", p, "encode", "app-agent", "--id", "123")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}
	var info model.AddressInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("config output=json not applied: %v\n%s", err, out)
	}
	if info.Address != aaAddr42 || info.SS58Format != 42 {
		t.Fatalf("config format not applied: %+v", info)
	}

	// Flags override the file.
	code, out, _ = runCLI(t, "--config", p, "encode", "app-agent", "--id", "123", "--format", "5335", "--json=false")
	if code != 0 || strings.TrimSpace(out) != aaAddr {
		t.Fatalf("flag override: code=%d out=%q", code, out)
	}

	if code, _, _ := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "decode", aaAddr); code != 2 {
		t.Fatalf("missing config: code=%d", code)
	}

	var outBuf, errBuf bytes.Buffer
	t.Setenv(config.EnvSS58Format, "42")
	t.Setenv(config.EnvCompliance, "strict")
	if code := run([]string{"decode", aaHex}, &outBuf, &errBuf); code != 1 {
		t.Fatalf("env strict must reject hex: code=%d", code)
	}
	outBuf.Reset()
	if code := run([]string{"encode", "app-agent", "--id", "123"}, &outBuf, &errBuf); code != 0 || strings.TrimSpace(outBuf.String()) != aaAddr42 {
		t.Fatalf("env format: code=%d out=%q", code, outBuf.String())
	}
}

func TestLogging_VerboseAndQuiet(t *testing.T) {
	_, _, errOut := runCLI(t, "-v", "decode", aaAddr)
	if !strings.Contains(errOut, "decoded") || !strings.Contains(errOut, "AppAgent") {
		t.Fatalf("verbose log missing: %q", errOut)
	}
	_, _, errOut = runCLI(t, "decode", aaAddr)
	if errOut != "" {
		t.Fatalf("info level must not log debug lines: %q", errOut)
	}
	code, _, errOut := runCLI(t, "-q", "decode", "--strict", aaHex)
	if code != 1 || errOut != "" {
		t.Fatalf("quiet: code=%d stderr=%q", code, errOut)
	}
}
