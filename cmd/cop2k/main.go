// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/cop2k/machine"
	"github.com/ezrec/cop2k/microcode"
	"github.com/ezrec/cop2k/monitor"
)

func main() {
	var microprogram string
	var script string
	var verbose bool

	flag.StringVar(&microprogram, "u", "", ".um micro-program to assemble into UM")
	flag.StringVar(&script, "x", "", "Monitor script to execute before the prompt")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	m := machine.NewMachine()
	m.Verbose = verbose

	if len(microprogram) != 0 {
		inf, err := os.Open(microprogram)
		if err != nil {
			log.Fatalf("%v: %v", microprogram, err)
		}

		ld := &microcode.Loader{Verbose: verbose}
		img, err := ld.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", microprogram, err)
		}

		err = img.Program(m)
		if err != nil {
			log.Fatalf("%v: %v", microprogram, err)
		}
	}

	mon := monitor.NewMonitor(m)

	if len(script) != 0 {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}

		err = mon.RunScript(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}

	err := mon.Run()
	if err != nil {
		log.Fatal(err)
	}
}
