// Package main provides the akasya debug shell, an interactive front end
// over the in-memory index.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args))
}

// run executes the shell and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string) int {
	if len(args) > 1 {
		switch args[1] {
		case "help", "-h", "--help":
			printUsage(os.Stdout)
			return 0
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", args[1])
			fmt.Fprintln(os.Stderr, "Run 'akasya help' for usage.")
			return 1
		}
	}

	sh, err := newShell(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "akasya: %v\n", err)
		return 1
	}
	sh.repl()
	return 0
}

func printUsage(w *os.File) {
	fmt.Fprint(w, `akasya - interactive shell over an in-memory ordered index

Usage:
  akasya          Start the shell on stdin/stdout
  akasya help     Show this help

Shell commands:
  SET <key> <value>   Store a key-value pair
  GET <key>           Look up a key
  DEL <key>           Remove a key
  SCAN [start end]    List entries in ascending key order
  MIN | MAX | LEN     Tree statistics
  HELP                Show the shell commands
  EXIT                Leave the shell
`)
}
