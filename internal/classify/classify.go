// Package classify walks a directory tree and classifies each subtree
// as a bare git repository or an ordinary directory.
//
// A directory is a git root iff it directly contains objects and refs
// subdirectories; git internals are never walked further. Depending on
// the active mode the walk reports layout violations, non-bare git
// trees, or files found outside any git tree.
package classify

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/raphi011/gitree/internal/log"
	"github.com/raphi011/gitree/internal/output"
	"github.com/raphi011/gitree/internal/pathutil"
)

// Mode selects which findings a walk produces.
type Mode int

const (
	// LayoutCheck reports git tree members that break the layout rule
	// and git roots not named *.git.
	LayoutCheck Mode = iota + 1

	// FindNonBare reports directories holding a working copy's .git
	// directory instead of a bare tree.
	FindNonBare

	// FindStray reports regular files found outside any git tree.
	FindStray
)

// Options configures a Classifier.
type Options struct {
	Mode       Mode
	Known      KnownNames
	Exceptions *Exceptions

	// MaxEntries caps the subdirectories and files processed per
	// directory. 0 means unbounded. Exceeding the cap aborts the walk.
	MaxEntries int
}

// Classifier performs the recursive walk and accumulates findings.
type Classifier struct {
	opts   Options
	out    *output.Printer
	report Report
}

// New creates a classifier. Nil tables fall back to the defaults.
func New(opts Options, out *output.Printer) *Classifier {
	if opts.Known == nil {
		opts.Known = NewKnownNames()
	}
	if opts.Exceptions == nil {
		opts.Exceptions, _ = NewExceptions(MatchBasename, nil)
	}
	return &Classifier{opts: opts, out: out}
}

// Walk runs the classification starting at root and returns the
// accumulated report. Fatal conditions (unreadable directory, unknown
// entry type, entry cap exceeded) abort the walk immediately.
func (c *Classifier) Walk(ctx context.Context, root string) (*Report, error) {
	if err := c.walk(ctx, log.FromContext(ctx), root); err != nil {
		return nil, err
	}
	return &c.report, nil
}

func (c *Classifier) walk(ctx context.Context, l *log.Logger, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.Checking(path)

	entries, err := os.ReadDir(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}

	var dirs, files []string
	hasObjects, hasRefs := false, false
	for _, ent := range entries {
		t := ent.Type()
		switch {
		case t.IsDir():
			name := ent.Name()
			if name == "objects" {
				hasObjects = true
			}
			if name == "refs" {
				hasRefs = true
			}
			dirs = append(dirs, name)
		case t.IsRegular():
			files = append(files, ent.Name())
		case t&fs.ModeIrregular != 0:
			return &UnknownEntryError{Path: path, Name: ent.Name()}
		}
		// symlinks, fifos, sockets and devices are neither part of a
		// git tree nor stray files; they are skipped
	}
	if c.opts.MaxEntries > 0 && len(dirs)+len(files) > c.opts.MaxEntries {
		return &EntryLimitError{Path: path, Limit: c.opts.MaxEntries}
	}

	if hasObjects && hasRefs {
		// Git root. Internals are not git-trees-within-git-trees, so
		// the walk stops here regardless of mode.
		if c.opts.Mode == LayoutCheck {
			if err := c.checkLayout(path); err != nil {
				return err
			}
			if !strings.HasSuffix(pathutil.Basename(path), ".git") {
				c.warnf("%s name not terminated with .git", path)
				c.report.MisnamedGitDirs++
			}
		}
		return nil
	}

	excepted := c.opts.Exceptions.Excepted(path)

	if c.opts.Mode == FindStray && !excepted {
		for _, name := range files {
			c.out.Printf("%s/%s\n", path, name)
			c.report.StrayFiles++
		}
	}

	for _, name := range dirs {
		if strings.HasSuffix(name, ".git") {
			// Git-named subtree: conformance-checked in place, never
			// walked. A bare ".git" means a working copy lives here.
			if c.opts.Mode == LayoutCheck {
				if err := c.checkLayout(path + "/" + name); err != nil {
					return err
				}
			}
			if name == ".git" && c.opts.Mode == FindNonBare {
				c.checkNonBare(path)
			}
			continue
		}
		if c.opts.Mode == FindStray && excepted {
			continue
		}
		if err := c.walk(ctx, l, path+"/"+name); err != nil {
			return err
		}
	}

	return nil
}
