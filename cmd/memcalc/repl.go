package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/memcalc/pkg/memcalc"
)

func printBanner() {
	fmt.Println("Please input calculation formula like 1 + 2, 2 - 1, 3 * 4, 4 / 2")
}

// runREPL reads calculator lines from stdin until an empty line or EOF.
func runREPL(runtime *memcalc.Runtime) {
	printBanner()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	processLines(runtime, os.Stdin, interactive)
}

// processLines runs the read loop over any line source. An empty line is the
// termination signal; a failed line is reported and the loop continues.
func processLines(runtime *memcalc.Runtime, r io.Reader, interactive bool) {
	reader := bufio.NewReader(r)
	for {
		if interactive {
			fmt.Print(">>> ")
		}

		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			if err == nil {
				// Empty line typed: end of session
				fmt.Println("Bye!")
				return
			}
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			}
			return
		}

		display, perr := runtime.ProcessLine(line)
		if perr != nil {
			fmt.Printf("Error: %v\n", perr)
		} else {
			fmt.Println(display)
		}

		if err != nil {
			// Last line had no trailing newline
			return
		}
	}
}
