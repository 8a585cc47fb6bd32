//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"log"
	"os"

	"github.com/markkurossi/sha1rc/derive"
	"github.com/markkurossi/sha1rc/env"
	"github.com/sirupsen/logrus"
)

func main() {
	table := flag.Bool("table", false, "print round constants as a table")
	verify := flag.Int("verify", 0,
		"verify folded rounds with `n` random message prefixes")
	seed := flag.Uint64("seed", 0, "deterministic random seed (0 for system random)")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	config := &env.Config{
		Output: os.Stdout,
		Log:    logger,
	}
	if *seed != 0 {
		rand, err := env.NewSeededReader(*seed)
		if err != nil {
			log.Fatal(err)
		}
		config.Rand = rand
	}

	constants := derive.Derive(config)

	if *table {
		constants.Table(config.GetOutput())
	} else if err := constants.Print(config.GetOutput()); err != nil {
		log.Fatal(err)
	}

	if *verify > 0 {
		if err := derive.Verify(config, constants, *verify); err != nil {
			log.Fatal(err)
		}
	}
}
