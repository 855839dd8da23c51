// Command nostr-keygen derives a nostr key pair from the content of a file,
// so that the same file always gives back the same nsec and npub.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"nostrkeygen.lol"
	"nostrkeygen.lol/chk"
	"nostrkeygen.lol/config"
	"nostrkeygen.lol/config/keyvalue"
	"nostrkeygen.lol/errorf"
	"nostrkeygen.lol/hex"
	"nostrkeygen.lol/keygen"
	"nostrkeygen.lol/log"
)

// Args are the command line arguments. Hex and XOnly default to the values in
// the configuration.
type Args struct {
	File  string   `arg:"positional" help:"file whose content is the entropy source, - for standard input"`
	Hex   bool     `help:"also print the keys in hexadecimal"`
	XOnly bool     `arg:"--xonly" help:"encode the 32 byte x-only public key in the npub (NIP-19)"`
	Check []string `arg:"--check" placeholder:"NSEC NPUB" help:"verify that an nsec and npub form a pair instead of deriving one"`
}

func (Args) Version() string { return "nostr-keygen " + nostrkeygen.Version }

func (Args) Description() string {
	return "derive a deterministic nostr key pair from the SHA-256 of a file\n\n" +
		"run 'nostr-keygen help' for the environment variables that configure it\n"
}

func fail(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func main() {
	cfg, err := config.New()
	if chk.E(err) {
		fail(err)
	}
	if config.HelpRequested() {
		config.PrintHelp(cfg, os.Stdout)
		os.Exit(0)
	}
	if config.EnvRequested() {
		keyvalue.PrintEnv(*cfg, os.Stdout)
		os.Exit(0)
	}
	args := Args{Hex: cfg.Hex, XOnly: cfg.XOnly}
	p := arg.MustParse(&args)
	if err = validate(args); err != nil {
		p.Fail(err.Error())
	}
	if err = run(args, cfg, os.Stdout); err != nil {
		fail(err)
	}
}

// validate rejects argument combinations that go-arg cannot express.
func validate(args Args) (err error) {
	switch {
	case len(args.Check) > 0 && args.File != "":
		err = errors.New("--check takes no entropy source file")
	case len(args.Check) == 0 && args.File == "":
		err = errors.New("an entropy source file is required")
	}
	return
}

// run derives and prints the key pair, or verifies one when Check is given.
func run(args Args, cfg *config.C, out io.Writer) (err error) {
	if len(args.Check) > 0 {
		if len(args.Check) != 2 {
			return errorf.D("--check needs an nsec and an npub, got %d values",
				len(args.Check))
		}
		if err = keygen.Verify(args.Check[0], args.Check[1]); chk.D(err) {
			return
		}
		_, _ = fmt.Fprintln(out, "ok")
		return
	}
	opts := []keygen.Option{keygen.WithMaxBytes(cfg.MaxBytes)}
	if args.XOnly {
		opts = append(opts, keygen.WithXOnly())
	}
	var r *keygen.Result
	if r, err = keygen.FromFile(args.File, opts...); chk.D(err) {
		return
	}
	log.D.F("derived %s from %s", r.Npub, args.File)
	_, _ = fmt.Fprintln(out, "nsec:", r.Nsec)
	_, _ = fmt.Fprintln(out, "npub:", r.Npub)
	if args.Hex {
		_, _ = fmt.Fprintln(out, "sec:", hex.Enc(r.Sec))
		_, _ = fmt.Fprintln(out, "pub:", hex.Enc(r.Pub))
	}
	return
}
