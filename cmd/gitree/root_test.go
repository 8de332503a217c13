package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitree/internal/classify"
	"github.com/raphi011/gitree/internal/config"
	"github.com/raphi011/gitree/internal/output"
	"github.com/raphi011/gitree/internal/ui/styles"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"open error", &classify.OpenError{Path: "/x", Err: os.ErrPermission}, 1},
		{"unknown entry type", &classify.UnknownEntryError{Path: "/x", Name: "y"}, 2},
		{"usage error", errors.New("accepts 1 arg(s)"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSelectedMode(t *testing.T) {
	defer resetModeFlags()

	tests := []struct {
		name    string
		set     func()
		want    classify.Mode
		wantErr bool
	}{
		{"layout check", func() { layoutCheck = true }, classify.LayoutCheck, false},
		{"find non-bare", func() { findNonBare = true }, classify.FindNonBare, false},
		{"find stray", func() { findStray = true }, classify.FindStray, false},
		{"none set", func() {}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetModeFlags()
			tt.set()
			got, err := selectedMode()
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectedMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("selectedMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func resetModeFlags() {
	layoutCheck, findNonBare, findStray = false, false, false
}

// runWalkTest runs the walk command function against root with the
// given mode flag set, capturing plain-text stdout.
func runWalkTest(t *testing.T, set func(), root string) string {
	t.Helper()
	defer resetModeFlags()
	resetModeFlags()
	set()
	cfg = config.Default()

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), styles.PlainWriter(&buf))
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)

	if err := runWalk(cmd, []string{root}); err != nil {
		t.Fatalf("runWalk() error = %v", err)
	}
	return buf.String()
}

func TestRunWalkLayoutSummary(t *testing.T) {
	root := t.TempDir()
	repo := filepath.Join(root, "repo.git")
	for _, d := range []string{"objects", "refs"} {
		if err := os.MkdirAll(filepath.Join(repo, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(repo, "notgit.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// Trailing slashes on the root are stripped before the walk.
	out := runWalkTest(t, func() { layoutCheck = true }, root+"///")

	if !strings.Contains(out, "WARNING: "+repo+"/notgit.txt breaks Git repo layout rule") {
		t.Errorf("output = %q, want layout warning", out)
	}
	if !strings.Contains(out, "\nCheck Result:\n") {
		t.Errorf("output = %q, want summary header", out)
	}
	if !strings.Contains(out, "1 files break Git repo layout rule") {
		t.Errorf("output = %q, want layout counter", out)
	}
	if !strings.Contains(out, "0 git dirs name not terminated with .git") {
		t.Errorf("output = %q, want naming counter", out)
	}
}

func TestRunWalkNonBareListing(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "workdir")
	if err := os.MkdirAll(filepath.Join(parent, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	out := runWalkTest(t, func() { findNonBare = true }, root)

	if want := parent + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunWalkStrayListing(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "randomdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "randomdir", "stray.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out := runWalkTest(t, func() { findStray = true }, root)

	if want := filepath.Join(root, "randomdir") + "/stray.txt\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
