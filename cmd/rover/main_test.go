package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/grid-rover/internal/rover"
)

// resetFlags restores every flag to its default so commands can be executed
// repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with isolated HOME and working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatalf("Getwd() failed: %v", wdErr)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"comma list", []string{"run", "N,N,E,E"}, "Position: (2, 2)\nPower used: 4\n"},
		{"separate tokens", []string{"run", "N", "E", "N", "E", "N"}, "Position: (2, 3)\nPower used: 5\n"},
		{"round trip", []string{"run", "N,E,S,W"}, "Position: (0, 0)\nPower used: 4\n"},
		{"clamped at edge", []string{"run", "S"}, "Position: (0, 0)\nPower used: 0\n"},
		{"custom start", []string{"run", "E,E", "--start", "8,3"}, "Position: (9, 3)\nPower used: 1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("execute(%v) failed: %v", tc.args, err)
			}
			if out != tc.expected {
				t.Errorf("output = %q, expected %q", out, tc.expected)
			}
		})
	}
}

func TestRunInvalidCommands(t *testing.T) {
	out, err := execute(t, "run", "N,X,E,Z")
	if !errors.Is(err, rover.ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if !strings.Contains(err.Error(), `"X", "Z"`) {
		t.Errorf("error should name every invalid token: %v", err)
	}
	if out != "" {
		t.Errorf("no state should be printed on error, got %q", out)
	}
}

func TestGoto(t *testing.T) {
	out, err := execute(t, "goto", "5", "7", "--show-path")
	if err != nil {
		t.Fatalf("goto failed: %v", err)
	}
	expected := "Path: N,E,N,N,E,N,E,N,E,N,N,E\nPosition: (5, 7)\nPower used: 12\n"
	if out != expected {
		t.Errorf("output = %q, expected %q", out, expected)
	}
}

func TestGotoErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"target outside", []string{"goto", "10", "3"}, rover.ErrOutOfBounds},
		{"start outside grid", []string{"goto", "1", "1", "--grid-size", "5", "--start", "6,0"}, nil},
		{"bad number", []string{"goto", "x", "3"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			if err == nil {
				t.Fatalf("execute(%v) should fail", tc.args)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	out, err := execute(t, "path", "0", "1", "--start", "6,4")
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	expected := "W,W,S,W,W,S,W,W,S\n9 steps from (6, 4) to (0, 1)\n"
	if out != expected {
		t.Errorf("output = %q, expected %q", out, expected)
	}

	out, err = execute(t, "path", "3", "3", "--start", "3,3")
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	if out != "Already at target.\n" {
		t.Errorf("output = %q", out)
	}
}

func TestGridSizeFlag(t *testing.T) {
	out, err := execute(t, "run", "N,N,N,N,N", "--grid-size", "3")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "Position: (0, 2)\nPower used: 2\n" {
		t.Errorf("output = %q", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--grid-size", "12")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.HasPrefix(out, "# source: embedded default\n") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "size: 12") {
		t.Errorf("flag override not reflected:\n%s", out)
	}

	out, err = execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if !strings.Contains(out, "history_size: 8") {
		t.Errorf("unexpected defaults output:\n%s", out)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr bool
	}{
		{"3,4", 3, 4, false},
		{" 1 , 2 ", 1, 2, false},
		{"3", 0, 0, true},
		{"a,1", 0, 0, true},
		{"1,b", 0, 0, true},
	}

	for _, tc := range tests {
		x, y, err := parsePoint(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePoint(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil || x != tc.x || y != tc.y {
			t.Errorf("parsePoint(%q) = %d, %d, %v; expected %d, %d", tc.in, x, y, err, tc.x, tc.y)
		}
	}
}
