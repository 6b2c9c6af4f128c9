package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/namemaker/pkg/config"
	"github.com/dmitrymomot/namemaker/pkg/namegen"
	"github.com/dmitrymomot/namemaker/pkg/wordlist"
)

type cliConfig struct {
	// WordlistPath points at an optional YAML file with custom name banks.
	WordlistPath string `env:"NAMEMAKER_WORDLIST"`
}

func main() {
	var cfg cliConfig
	config.MustLoad(&cfg)

	var opts []namegen.Option
	if cfg.WordlistPath != "" {
		lists, err := wordlist.LoadFile(cfg.WordlistPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = append(opts,
			namegen.WithMaleNames(lists.Male),
			namegen.WithFemaleNames(lists.Female),
			namegen.WithSurnames(lists.Surnames),
		)
	}

	gen, err := namegen.New(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	run(gen, os.Args[1:], os.Stdout, os.Stderr)
}
