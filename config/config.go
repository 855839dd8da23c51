// Package config loads the settings of the nostr-keygen tool from the
// environment, with an optional .env file in the profile directory underneath
// it.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go-simpler.org/env"

	"nostrkeygen.lol/chk"
	envfile "nostrkeygen.lol/env"
	"nostrkeygen.lol/log"
	"nostrkeygen.lol/lol"
)

// C is the configuration of nostr-keygen. Command line flags, where given,
// take precedence over these.
type C struct {
	AppName  string `env:"APP_NAME" default:"nostr-keygen"`
	Profile  string `env:"PROFILE" usage:"directory holding an optional .env file (default is the XDG config directory for APP_NAME)"`
	LogLevel string `env:"LOG_LEVEL" default:"warn" usage:"debug level: off fatal error warn info debug trace"`
	XOnly    bool   `env:"XONLY" default:"false" usage:"encode the 32 byte x-only public key in the npub (NIP-19) instead of the 33 byte compressed key"`
	Hex      bool   `env:"HEX" default:"false" usage:"also print the keys in hexadecimal"`
	MaxBytes int64  `env:"MAX_BYTES" default:"0" usage:"refuse entropy sources longer than this many bytes, 0 means no limit"`
}

// New loads the configuration from the process environment, then again with
// the .env file in the profile directory, if there is one, filling in
// whatever the environment leaves unset. The log level is applied.
func New() (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, nil); chk.T(err) {
		return
	}
	if cfg.Profile == "" {
		cfg.Profile = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}
	envPath := filepath.Join(cfg.Profile, ".env")
	if fi, e := os.Stat(envPath); e == nil && !fi.IsDir() {
		var file envfile.Env
		if file, err = envfile.GetEnv(envPath); chk.E(err) {
			return
		}
		profile := cfg.Profile
		if err = env.Load(cfg, &env.Options{Source: envfile.Layered{File: file}}); chk.E(err) {
			return
		}
		if cfg.Profile == "" {
			cfg.Profile = profile
		}
	}
	lol.SetLogLevel(cfg.LogLevel)
	log.T.S(cfg)
	return
}

// HelpRequested returns true if the first command line parameter asks for the
// configuration help.
func HelpRequested() (help bool) { return command(os.Args, "help", "?") }

// EnvRequested returns true if the first command line parameter asks for the
// configuration to be printed as a shell script.
func EnvRequested() (requested bool) { return command(os.Args, "env") }

// command reports whether the first parameter in args is one of words. A file
// of that name in the working directory is an entropy source, not a command.
func command(args []string, words ...string) (is bool) {
	if len(args) < 2 {
		return
	}
	for _, w := range words {
		if strings.ToLower(args[1]) == w {
			is = true
			break
		}
	}
	if is {
		if _, err := os.Stat(args[1]); err == nil {
			log.D.F("%s is a file, using it as the entropy source", args[1])
			is = false
		}
	}
	return
}

// PrintHelp renders the environment variables that configure the tool.
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer, "\nenvironment variables that configure %s\n\n", cfg.AppName)
	env.Usage(cfg, printer, nil)
	_, _ = fmt.Fprintf(printer, `
an optional .env file at %s is read for any variable not set in the environment

commands:

  - print this help message

      %s help

  - print environment variables as a shell script that can be edited to set the configuration

      %s env

a file named help, ? or env in the working directory is read as the entropy
source instead of running the command

`, filepath.Join(cfg.Profile, ".env"), cfg.AppName, cfg.AppName)
}
