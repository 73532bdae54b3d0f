package solution

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/ezrec/hrm/cpu"
	"github.com/ezrec/hrm/emulator"
	"github.com/ezrec/hrm/internal"
)

// Result is the outcome of running a single solution.
type Result struct {
	Name     string
	Passed   bool
	Summary  cpu.Summary // Valid when Err is nil.
	Expected []string    // Expected outbox.
	Err      error       // Configuration, compile or runtime error.
}

// String returns the one line report of the result.
func (res Result) String() string {
	if res.Err != nil {
		return f("ERROR %v: %v", res.Name, res.Err)
	}

	status := "PASS"
	if !res.Passed {
		status = "FAIL"
	}

	text := f("%v %v: %v instructions, %v steps, outbox %v",
		status, res.Name, res.Summary.Instructions, res.Summary.Steps, internal.List(res.Summary.Outbox))
	if !res.Passed {
		text += f(", expected %v", internal.List(res.Expected))
	}

	return text
}

// Runner compiles, runs, and checks solutions.
type Runner struct {
	Verbose   bool      // If set, enables verbose logging.
	Trace     io.Writer // If set, every step of every run is traced here.
	StepLimit int       // Default step limit; zero for no limit.
}

// Run a single named solution.
func (r *Runner) Run(cfg *Config, name string) (result Result) {
	result.Name = name

	defer func() {
		if r.Verbose {
			log.Printf("solution: %v", result)
		}
	}()

	sol, err := cfg.Get(name)
	if err != nil {
		result.Err = err
		return
	}

	err = sol.Validate()
	if err != nil {
		result.Err = err
		return
	}

	result.Expected = sol.OutboxTokens()

	emu := emulator.NewEmulator(sol.Registers)
	emu.Verbose = r.Verbose
	emu.Trace = r.Trace
	for define, value := range sol.Defines {
		emu.Define(define, value)
	}

	_, err = emu.Compile(sol.Code)
	if err != nil {
		result.Err = err
		return
	}

	err = emu.Reset(sol.InboxTokens(), sol.Floor)
	if err != nil {
		result.Err = err
		return
	}

	emu.Machine.StepLimit = r.StepLimit
	if sol.MaxSteps > 0 {
		emu.Machine.StepLimit = sol.MaxSteps
	}

	if r.Trace != nil {
		fmt.Fprintf(r.Trace, "== %v\n", name)
	}

	result.Summary, err = emu.Run()
	if err != nil {
		result.Err = err
		return
	}

	result.Passed = slices.Equal(result.Summary.Outbox, result.Expected)
	return
}

// RunAll runs each named solution independently; all solutions, in sorted
// order, when no names are given.
func (r *Runner) RunAll(cfg *Config, names ...string) (results []Result) {
	if len(names) == 0 {
		names = cfg.Names()
	}

	for _, name := range names {
		results = append(results, r.Run(cfg, name))
	}

	return
}
