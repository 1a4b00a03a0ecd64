// Command memcalc is the memory calculator CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"nickandperla.net/memcalc/pkg/memcalc"
)

func main() {
	var (
		evalStr   = flag.String("e", "", "Evaluate one calculator line and exit")
		file      = flag.String("f", "", "Process a file of calculator lines")
		dbPath    = flag.String("db", "memcalc.db", "SQLite history database path")
		noHistory = flag.Bool("no-history", false, "Disable session history")
		histN     = flag.Int("history", 0, "Print the N most recent history entries and exit")
		slotCap   = flag.Int("slot-cap", 0, "Maximum number of memory slots (0 = unbounded)")
		mutResult = flag.Bool("mutation-result", false, "Memory commands update the previous result")
	)

	flag.Parse()

	// Build options
	opts := []memcalc.Option{}
	if !*noHistory {
		opts = append(opts, memcalc.WithSQLiteHistory(*dbPath))
	}
	if *slotCap > 0 {
		opts = append(opts, memcalc.WithSlotCap(*slotCap))
	}
	if *mutResult {
		opts = append(opts, memcalc.WithMutationResult())
	}

	runtime := memcalc.New(opts...)
	defer runtime.Close()

	switch {
	case *histN > 0:
		if err := printHistory(runtime, *histN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *evalStr != "":
		display, err := runtime.ProcessLine(*evalStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(display)

	case *file != "":
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
			os.Exit(1)
		}
		processLines(runtime, f, false)
		f.Close()

	default:
		runREPL(runtime)
	}
}

// printHistory prints the n most recent history entries, newest first.
func printHistory(runtime *memcalc.Runtime, n int) error {
	h := runtime.History()
	if h == nil {
		return fmt.Errorf("history is disabled")
	}
	entries, err := h.Recent(n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Ts, e.Display)
	}
	return nil
}
