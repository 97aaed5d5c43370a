package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	var (
		kind  string
		runes bool
	)
	pflag.StringVarP(&kind, "kind", "k", "slice", `sink kind: `+strings.Join(Kinds, ", "))
	pflag.BoolVarP(&runes, "runes", "r", false, `feed the string kind rune by rune`)
	pflag.Parse()

	var in io.Reader = os.Stdin
	if args := pflag.Args(); len(args) > 0 {
		rs := make([]io.Reader, 0, len(args))
		for _, a := range args {
			f, err := os.Open(a)
			if err != nil {
				log.Panicf("failed to open %s: %v", a, err)
			}
			defer f.Close()
			rs = append(rs, f)
		}
		in = io.MultiReader(rs...)
	} else if terminal.IsTerminal(int(os.Stdin.Fd())) {
		log.Print("reading from terminal, end input with Ctrl-D")
	}

	if err := Collect(os.Stdout, in, kind, runes); err != nil {
		log.Panicf("failed to collect: %v", err)
	}
}
