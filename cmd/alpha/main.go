// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/alpha/emulator"
	"github.com/ezrec/alpha/machine"
	"github.com/ezrec/alpha/script"
	"github.com/ezrec/alpha/translate"
)

func main() {
	var source string
	var steps int
	var list bool
	var quiet bool
	var verbose bool
	var lang string

	flag.StringVar(&source, "s", "", ".star program script to run")
	flag.IntVar(&steps, "n", emulator.DEFAULT_STEP_LIMIT, "Maximum steps to execute")
	flag.BoolVar(&list, "l", false, "List the program, do not execute")
	flag.BoolVar(&quiet, "q", false, "Do not dump the final machine state")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "L", "", "Locale for messages and numbers, such as de-DE")

	flag.Parse()

	log.SetPrefix(os.Args[0] + ": ")
	log.SetFlags(0)

	if flag.NArg() != 0 {
		atexit.Fatalf("unknown arguments: %v", flag.Args())
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if len(source) == 0 {
		flag.Usage()
		atexit.Exit(2)
	}

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		out.Flush()
	})

	ld := &script.Loader{Verbose: verbose}
	prog, cfg, err := ld.Load(source, nil)
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	if list {
		fmt.Fprint(out, prog.String())
		atexit.Exit(0)
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = verbose

	err = emu.Load(prog)
	if err != nil {
		var verr *machine.ValidationError
		if errors.As(err, &verr) {
			for _, problem := range verr.Problems {
				log.Printf("%v: %v", source, problem)
			}
			atexit.Fatalf("%v: %d problems", source, len(verr.Problems))
		}
		atexit.Fatalf("%v: %v", source, err)
	}

	err = emu.Run(context.Background(), steps)

	if !quiet {
		dumpErr := emu.Dump(out)
		if dumpErr != nil {
			log.Printf("%v", dumpErr)
		}
	}

	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	atexit.Exit(0)
}
