package main

// Notes:
// - runHelp: we check the usage line of each topic and the exit code for
//   unknown topics. Full help text is not snapshotted.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Per-command help topics
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no topic", nil, ExitSuccess, "Usage: bingo <command>", ""},
		{"generate", []string{"generate"}, ExitSuccess, "Usage: bingo generate", ""},
		{"render", []string{"render"}, ExitSuccess, "Usage: bingo render", ""},
		{"init", []string{"init"}, ExitSuccess, "Usage: bingo init", ""},
		{"doctor", []string{"doctor"}, ExitSuccess, "Usage: bingo doctor", ""},
		{"completion", []string{"completion"}, ExitSuccess, "Usage: bingo completion", ""},
		{"version", []string{"version"}, ExitSuccess, "Usage: bingo version", ""},
		{"help", []string{"help"}, ExitSuccess, "Usage: bingo help", ""},
		{"unknown", []string{"convert"}, ExitUsage, "", "unknown command: convert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("runHelp() = %d, want %d", code, tt.wantCode)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintGenerateUsage - Flags documented in help
// ---------------------------------------------------------------------------

func TestPrintGenerateUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printGenerateUsage(&buf)

	for _, want := range []string{"--count", "--template", "--words", "--seed", "--no-pdf", "--mode", "--font", "--page-size"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("generate usage missing %s", want)
		}
	}
}
