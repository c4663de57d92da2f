package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/akasyadb/akasya/btree"
)

// shell is a line-oriented REPL over a string-keyed tree.
// It carries no logic of its own: every command maps onto one public
// tree operation.
type shell struct {
	in   io.Reader
	out  io.Writer
	tree *btree.Tree[string, string]

	okColor   *color.Color
	missColor *color.Color
	errColor  *color.Color
}

func newShell(in io.Reader, out io.Writer) (*shell, error) {
	tree, err := btree.New[string, string]()
	if err != nil {
		return nil, err
	}
	return &shell{
		in:        in,
		out:       out,
		tree:      tree,
		okColor:   color.New(color.FgGreen),
		missColor: color.New(color.FgYellow),
		errColor:  color.New(color.FgRed),
	}, nil
}

// repl reads commands until EOF or EXIT.
func (s *shell) repl() {
	fmt.Fprintln(s.out, `akasya shell - type HELP for commands`)
	fmt.Fprint(s.out, "> ")

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if !s.processLine(scanner.Text()) {
			return
		}
		fmt.Fprint(s.out, "> ")
	}
}

// processLine handles one command line. Returns false when the shell
// should terminate.
func (s *shell) processLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "set":
		s.cmdSet(fields[1:])
	case "get":
		s.cmdGet(fields[1:])
	case "del":
		s.cmdDel(fields[1:])
	case "scan":
		s.cmdScan(fields[1:])
	case "min":
		s.cmdMin()
	case "max":
		s.cmdMax()
	case "len":
		fmt.Fprintln(s.out, s.tree.Len())
	case "help":
		s.printHelp()
	case "exit", "quit":
		return false
	default:
		s.errColor.Fprintf(s.out, "unknown command %q; type HELP\n", fields[0])
	}
	return true
}

func (s *shell) cmdSet(args []string) {
	if len(args) != 2 {
		s.errColor.Fprintln(s.out, "usage: SET <key> <value>")
		return
	}
	s.tree.Insert(args[0], args[1])
	s.okColor.Fprintln(s.out, "OK")
}

func (s *shell) cmdGet(args []string) {
	if len(args) != 1 {
		s.errColor.Fprintln(s.out, "usage: GET <key>")
		return
	}
	val, ok := s.tree.Get(args[0])
	if !ok {
		s.missColor.Fprintln(s.out, "(nil)")
		return
	}
	s.okColor.Fprintln(s.out, val)
}

func (s *shell) cmdDel(args []string) {
	if len(args) != 1 {
		s.errColor.Fprintln(s.out, "usage: DEL <key>")
		return
	}
	if !s.tree.Delete(args[0]) {
		s.missColor.Fprintln(s.out, "(not found)")
		return
	}
	s.okColor.Fprintln(s.out, "OK")
}

func (s *shell) cmdScan(args []string) {
	var it *btree.Iterator[string, string]
	switch len(args) {
	case 0:
		it = s.tree.All()
	case 2:
		it = s.tree.Range(args[0], args[1])
	default:
		s.errColor.Fprintln(s.out, "usage: SCAN [start end]")
		return
	}

	count := 0
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		fmt.Fprintf(s.out, "%s = %s\n", k, v)
		count++
	}
	s.okColor.Fprintf(s.out, "(%d entries)\n", count)
}

func (s *shell) cmdMin() {
	k, ok := s.tree.Min()
	if !ok {
		s.missColor.Fprintln(s.out, "(empty)")
		return
	}
	s.okColor.Fprintln(s.out, k)
}

func (s *shell) cmdMax() {
	k, ok := s.tree.Max()
	if !ok {
		s.missColor.Fprintln(s.out, "(empty)")
		return
	}
	s.okColor.Fprintln(s.out, k)
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  SET <key> <value>   Store a key-value pair
  GET <key>           Look up a key
  DEL <key>           Remove a key
  SCAN [start end]    List entries in ascending key order
  MIN | MAX | LEN     Tree statistics
  HELP                Show this help
  EXIT                Leave the shell
`)
}
