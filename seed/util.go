package seed

import (
	"nostrkeygen.lol/lol"
)

type (
	by = []byte
	er = error
)

var (
	log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
)
