package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Keep assertions on plain text.
	color.NoColor = true
}

// runScript feeds commands to a fresh shell and returns everything it wrote.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	sh, err := newShell(strings.NewReader(strings.Join(lines, "\n")), &out)
	if err != nil {
		t.Fatalf("failed to create shell: %v", err)
	}
	sh.repl()
	return out.String()
}

func TestShellSetGet(t *testing.T) {
	out := runScript(t, "SET name alice", "GET name", "EXIT")

	if !strings.Contains(out, "OK") {
		t.Errorf("SET should acknowledge, got:\n%s", out)
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("GET should print the stored value, got:\n%s", out)
	}
}

func TestShellGetMiss(t *testing.T) {
	out := runScript(t, "GET missing", "EXIT")

	if !strings.Contains(out, "(nil)") {
		t.Errorf("GET of an absent key should print (nil), got:\n%s", out)
	}
}

func TestShellDelete(t *testing.T) {
	out := runScript(t, "SET k v", "DEL k", "DEL k", "EXIT")

	if !strings.Contains(out, "(not found)") {
		t.Errorf("second DEL should report (not found), got:\n%s", out)
	}
}

func TestShellScan(t *testing.T) {
	out := runScript(t, "SET b 2", "SET a 1", "SET c 3", "SCAN", "EXIT")

	ia := strings.Index(out, "a = 1")
	ib := strings.Index(out, "b = 2")
	ic := strings.Index(out, "c = 3")
	if ia < 0 || ib < 0 || ic < 0 {
		t.Fatalf("SCAN should list all entries, got:\n%s", out)
	}
	if !(ia < ib && ib < ic) {
		t.Errorf("SCAN should list entries in key order, got:\n%s", out)
	}
	if !strings.Contains(out, "(3 entries)") {
		t.Errorf("SCAN should report the entry count, got:\n%s", out)
	}
}

func TestShellScanRange(t *testing.T) {
	out := runScript(t, "SET a 1", "SET b 2", "SET c 3", "SET d 4", "SCAN b c", "EXIT")

	if strings.Contains(out, "a = 1") || strings.Contains(out, "d = 4") {
		t.Errorf("SCAN with bounds should exclude keys outside them, got:\n%s", out)
	}
	if !strings.Contains(out, "(2 entries)") {
		t.Errorf("SCAN b c should find two entries, got:\n%s", out)
	}
}

func TestShellUnknownCommand(t *testing.T) {
	out := runScript(t, "BOGUS", "EXIT")

	if !strings.Contains(out, "unknown command") {
		t.Errorf("expected an unknown-command message, got:\n%s", out)
	}
}

func TestShellLenAndStats(t *testing.T) {
	out := runScript(t, "SET m 1", "SET z 2", "SET a 3", "LEN", "MIN", "MAX", "EXIT")

	for _, want := range []string{"3", "a", "z"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}
