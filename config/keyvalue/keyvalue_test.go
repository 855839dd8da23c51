package keyvalue

import (
	"bytes"
	"testing"
)

type sample struct {
	Name    string   `env:"NAME"`
	Level   int64    `env:"LEVEL"`
	On      bool     `env:"ON"`
	List    []string `env:"LIST"`
	Ignored string
}

func TestPrintEnv(t *testing.T) {
	buf := new(bytes.Buffer)
	PrintEnv(&sample{Name: "my keys", Level: 3, On: true, List: []string{"a", "b"},
		Ignored: "x"}, buf)
	want := "#!/usr/bin/env bash\n" +
		"export LEVEL=3\n" +
		"export LIST=a,b\n" +
		"export NAME='my keys'\n" +
		"export ON=true\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
