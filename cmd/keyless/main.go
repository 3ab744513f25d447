package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/traittech/trait-keyless/address"
	"github.com/traittech/trait-keyless/cidutil"
	"github.com/traittech/trait-keyless/compliance"
	"github.com/traittech/trait-keyless/config"
	"github.com/traittech/trait-keyless/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env carries the resolved configuration and logger into every subcommand.
type env struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer
	err io.Writer
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("keyless", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() { printUsage(errOut) }
	var cfgPath string
	var verbose, quiet bool
	fs.StringVar(&cfgPath, "config", "", "JSON config file")
	fs.BoolVar(&verbose, "v", false, "Debug logging")
	fs.BoolVar(&quiet, "q", false, "Disable logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	args = fs.Args()
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 2
	}
	level, _ := cfg.Level()
	if verbose {
		level = zapcore.DebugLevel
	}
	log := newLogger(errOut, level, quiet)
	defer func() { _ = log.Sync() }()

	e := &env{cfg: cfg, log: log, out: out, err: errOut}

	switch args[0] {
	case "encode":
		return e.cmdEncode(args[1:])
	case "decode":
		return e.cmdDecode(args[1:])
	case "check":
		return e.cmdCheck(args[1:])
	case "cid":
		return e.cmdCID(args[1:])
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "keyless: keyless account address tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  keyless [--config <file>] [-v|-q] <command> ...")
	fmt.Fprintln(w, "  keyless encode app-agent --id <N> [--format <F>] [--hex] [--json]")
	fmt.Fprintln(w, "  keyless encode transactional --id <N> --ta <M> [--format <F>] [--hex] [--json]")
	fmt.Fprintln(w, "  keyless encode named --id <N> --name <NAME> [--format <F>] [--hex] [--json]")
	fmt.Fprintln(w, "  keyless decode [--format <F>] [--strict] [--json] <address|0xhex>")
	fmt.Fprintln(w, "  keyless check [--format <F>] [--strict] <address|0xhex>")
	fmt.Fprintln(w, "  keyless cid [--format <F>] [--strict] <address|0xhex>")
	fmt.Fprintln(w, "  keyless cid --parse [--format <F>] [--hex] <cid>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - --format defaults to 5335 (Trait Asset Hub); use 42 for the generic Substrate format")
	fmt.Fprintln(w, "  - NAME is exactly 10 characters from [0-9a-zA-Z#-]")
	fmt.Fprintln(w, "  - check prints keyless or regular and exits 0 or 1")
	fmt.Fprintf(w, "  - %s and %s override the config file; flags override both\n", config.EnvSS58Format, config.EnvCompliance)
	fmt.Fprintln(w, "  - results go to stdout, logs to stderr")
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	return cfg.FromEnv()
}

func newLogger(w io.Writer, level zapcore.Level, quiet bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// addressFlags registers the flags shared by every command that reads an address.
func (e *env) addressFlags(fs *flag.FlagSet) (format *uint, strict *bool) {
	format = fs.Uint("format", uint(e.cfg.SS58Format), "SS58 network format")
	strict = fs.Bool("strict", e.cfg.Mode() == compliance.Strict, "Accept only SS58 text, exactly as given")
	return format, strict
}

func toFormat(v uint) (uint16, bool) {
	if v > math.MaxUint16 {
		return 0, false
	}
	return uint16(v), true
}

func toUint32(v uint64) (uint32, bool) {
	if v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

func (e *env) cmdEncode(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(e.err, "usage: keyless encode <app-agent|transactional|named> ...")
		return 2
	}
	var typ, required string
	switch args[0] {
	case "app-agent":
		typ = model.TypeAppAgent
	case "transactional":
		typ, required = model.TypeTransactional, " --ta <M>"
	case "named":
		typ, required = model.TypeNamed, " --name <NAME>"
	default:
		fmt.Fprintf(e.err, "unknown encode subcommand: %s\n", args[0])
		return 2
	}

	fs := flag.NewFlagSet("encode "+args[0], flag.ContinueOnError)
	fs.SetOutput(e.err)
	var id, ta uint64
	var name string
	var asHex bool
	fs.Uint64Var(&id, "id", 0, "AppAgent id")
	fs.Uint64Var(&ta, "ta", 0, "Transactional id")
	fs.StringVar(&name, "name", "", "Address name (10 chars)")
	fs.BoolVar(&asHex, "hex", false, "Print the 0x-hex account id instead of the SS58 address")
	format := fs.Uint("format", uint(e.cfg.SS58Format), "SS58 network format")
	asJSON := fs.Bool("json", e.cfg.Output == "json", "Print JSON")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if !seen["id"] || fs.NArg() != 0 ||
		(typ == model.TypeTransactional && !seen["ta"]) ||
		(typ == model.TypeNamed && !seen["name"]) {
		fmt.Fprintf(e.err, "usage: keyless encode %s --id <N>%s\n", args[0], required)
		return 2
	}

	req := model.EncodeRequest{AddressType: typ, AddressName: name}
	var ok bool
	if req.AppAgentID, ok = toUint32(id); !ok {
		fmt.Fprintf(e.err, "--id %d exceeds 32 bits\n", id)
		return 2
	}
	if typ == model.TypeTransactional {
		v, ok := toUint32(ta)
		if !ok {
			fmt.Fprintf(e.err, "--ta %d exceeds 32 bits\n", ta)
			return 2
		}
		req.TAID = &v
	}
	f, ok := toFormat(*format)
	if !ok {
		fmt.Fprintf(e.err, "--format %d out of range\n", *format)
		return 2
	}
	req.SS58Format = &f

	info, err := model.Encode(req)
	if err != nil {
		e.log.Error("encode failed", zap.String("type", typ), zap.Error(err))
		return 1
	}
	e.log.Debug("encoded", zap.String("type", typ), zap.Uint16("format", f), zap.String("account", info.AccountID))

	switch {
	case *asJSON:
		return e.writeJSON(info)
	case asHex:
		fmt.Fprintln(e.out, info.AccountID)
	default:
		fmt.Fprintln(e.out, info.Address)
	}
	return 0
}

// parseAddressArgs parses fs and returns its single positional argument
// together with the requested format and compliance mode.
func (e *env) parseAddressArgs(fs *flag.FlagSet, args []string) (string, uint16, model.ComplianceMode, int) {
	fs.SetOutput(e.err)
	format, strict := e.addressFlags(fs)
	if err := fs.Parse(args); err != nil {
		return "", 0, "", 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(e.err, "usage: keyless %s [flags] <arg>\n", fs.Name())
		return "", 0, "", 2
	}
	f, ok := toFormat(*format)
	if !ok {
		fmt.Fprintf(e.err, "--format %d out of range\n", *format)
		return "", 0, "", 2
	}
	mode := model.CompliancePermissive
	if *strict {
		mode = model.ComplianceStrict
	}
	return fs.Arg(0), f, mode, 0
}

func (e *env) decode(text string, f uint16, mode model.ComplianceMode) (*model.AddressInfo, int) {
	info, err := model.Decode(model.DecodeRequest{Address: text, SS58Format: &f, Compliance: mode})
	if err != nil {
		e.log.Error("decode failed", zap.String("input", text), zap.Error(err))
		return nil, 1
	}
	e.log.Debug("decoded", zap.String("type", info.AddressType), zap.Uint16("format", f), zap.String("account", info.AccountID))
	return info, 0
}

func (e *env) cmdDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	asJSON := fs.Bool("json", e.cfg.Output == "json", "Print JSON")
	text, f, mode, code := e.parseAddressArgs(fs, args)
	if code != 0 {
		return code
	}
	info, code := e.decode(text, f, mode)
	if code != 0 {
		return code
	}
	if *asJSON {
		return e.writeJSON(info)
	}
	fmt.Fprintf(e.out, "type: %s\n", info.AddressType)
	fmt.Fprintf(e.out, "account: %s\n", info.AccountID)
	fmt.Fprintf(e.out, "address: %s\n", info.Address)
	if info.AppAgentID != nil {
		fmt.Fprintf(e.out, "appAgentId: %d\n", *info.AppAgentID)
	}
	if info.TAID != nil {
		fmt.Fprintf(e.out, "taId: %d\n", *info.TAID)
	}
	if info.AddressName != nil {
		fmt.Fprintf(e.out, "addressName: %s\n", *info.AddressName)
	}
	return 0
}

func (e *env) cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	text, f, mode, code := e.parseAddressArgs(fs, args)
	if code != 0 {
		return code
	}
	info, code := e.decode(text, f, mode)
	if code != 0 {
		return code
	}
	if info.Keyless {
		fmt.Fprintln(e.out, "keyless")
		return 0
	}
	fmt.Fprintln(e.out, "regular")
	return 1
}

func (e *env) cmdCID(args []string) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	parse := fs.Bool("parse", false, "Treat the argument as a CID and print the account it carries")
	asHex := fs.Bool("hex", false, "With --parse, print the 0x-hex account id")
	arg, f, mode, code := e.parseAddressArgs(fs, args)
	if code != 0 {
		return code
	}

	if !*parse {
		if *asHex {
			fmt.Fprintln(e.err, "--hex requires --parse")
			return 2
		}
		info, code := e.decode(arg, f, mode)
		if code != 0 {
			return code
		}
		fmt.Fprintln(e.out, info.CID)
		return 0
	}

	acc, err := cidutil.ParseAccountCID(arg)
	if err != nil {
		e.log.Error("cid parse failed", zap.String("input", arg), zap.Error(err))
		return 1
	}
	if *asHex {
		fmt.Fprintln(e.out, acc.String())
		return 0
	}
	text, err := address.EncodeAccount(acc, address.WithFormat(f))
	if err != nil {
		e.log.Error("encode failed", zap.Error(err))
		return 1
	}
	fmt.Fprintln(e.out, text)
	return 0
}

func (e *env) writeJSON(v any) int {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		e.log.Error("write json", zap.Error(err))
		return 1
	}
	return 0
}
