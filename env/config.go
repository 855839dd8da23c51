// Package env reads .env files and layers them under the process environment
// as a go-simpler.org/env Source.
package env

import (
	"os"
	"strings"

	"nostrkeygen.lol/chk"
	"nostrkeygen.lol/errorf"
)

// Env is a key/value map used to represent environment variables. This is
// implemented for go-simpler.org library.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format. Blank lines, comments and an
// optional leading "export " are skipped, and values may be quoted.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for i, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			err = errorf.D("%s:%d: expected KEY=value, got '%s'", path, i+1, line)
			return
		}
		env[strings.TrimSpace(split[0])] = unquote(strings.TrimSpace(split[1]))
	}
	return
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}

// Layered is a Source that prefers the process environment and falls back to
// the values in the .env file.
type Layered struct{ File Env }

// LookupEnv looks the key up in the process environment, then in the file.
func (l Layered) LookupEnv(key string) (value string, ok bool) {
	if value, ok = os.LookupEnv(key); ok {
		return
	}
	return l.File.LookupEnv(key)
}
