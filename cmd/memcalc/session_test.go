package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI builds the memcalc binary into dir and returns its path.
func buildCLI(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "memcalc")
	cmd := exec.Command("go", "build", "-o", bin, "./")
	cmd.Dir = "."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build memcalc: %v\n%s", err, out)
	}
	return bin
}

func TestPipedSession(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "memcalc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)

	runCmd := exec.Command(bin, "-no-history")
	runCmd.Stdin = strings.NewReader("1 + 2\n3 * 4\nmemx+\nmemx + 1\nabc + 1\n\n")
	output, err := runCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run memcalc: %v\n%s", err, output)
	}

	got := string(output)
	for _, want := range []string{
		"1 + 2 equal 3",
		"3 * 4 equal 12",
		"set memoryx equal 12",
		"memx + 1 equal 13",
		"Error: ",
		"Bye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestEvalFlag(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "memcalc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)

	output, err := exec.Command(bin, "-no-history", "-e", "( 2 + 3 ) * 4").CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run memcalc: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "( 2 + 3 ) * 4 equal 20") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestHistoryFlag(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "memcalc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)
	dbPath := filepath.Join(tmpDir, "test.db")

	// Record a session
	runCmd := exec.Command(bin, "-db", dbPath)
	runCmd.Stdin = strings.NewReader("1 + 2\n2 * 5\n\n")
	if out, err := runCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run session: %v\n%s", err, out)
	}

	// Query it back
	output, err := exec.Command(bin, "-db", dbPath, "-history", "1").CombinedOutput()
	if err != nil {
		t.Fatalf("failed to query history: %v\n%s", err, output)
	}
	got := string(output)
	if !strings.Contains(got, "2 * 5 equal 10") {
		t.Errorf("expected newest entry in history output, got:\n%s", got)
	}
	if strings.Contains(got, "1 + 2 equal 3") {
		t.Errorf("expected limit 1 to exclude older entry, got:\n%s", got)
	}
}
