// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/hrm/solution"
)

func main() {
	var trace bool
	var verbose bool
	var limit int

	flag.BoolVar(&trace, "trace", false, "Trace every step to stdout")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&limit, "limit", 1_000_000, "Step limit per solution, 0 for none")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] path[:name...]...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	runner := &solution.Runner{
		Verbose:   verbose,
		StepLimit: limit,
	}
	if trace {
		runner.Trace = os.Stdout
	}

	failed := 0
	for _, target := range flag.Args() {
		path, names, err := solution.ParseTarget(target)
		if err != nil {
			log.Fatalf("%v: %v", target, err)
		}

		cfg, err := solution.Load(path)
		if err != nil {
			log.Fatal(err)
		}

		for _, result := range runner.RunAll(cfg, names...) {
			fmt.Println(result)
			if !result.Passed {
				failed++
			}
		}
	}

	if failed != 0 {
		os.Exit(1)
	}
}
