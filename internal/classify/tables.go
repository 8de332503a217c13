package classify

import (
	"fmt"
	"strings"

	"github.com/raphi011/gitree/internal/pathutil"
)

// defaultKnownNames lists every member name accepted inside a bare git
// tree: the canonical git files and directories, plus the repo-tool and
// gitweb artifacts that legitimately show up in long-lived mirrors.
var defaultKnownNames = []string{
	// git files
	"COMMIT_EDITMSG",
	"config",
	"description",
	"FETCH_HEAD",
	"HEAD",
	"index",
	"packed-refs",
	"ORIG_HEAD",
	"MERGE_HEAD",
	"MERGE_MODE",
	"MERGE_MSG",
	"MERGE_RR",
	"RENAMED-REF",
	"gitk.cache",
	// git dirs
	"hooks",
	"info",
	"logs",
	"objects",
	"rebase-apply",
	"refs",
	"branches",
	"remotes",
	"shallow",
	"rr-cache",
	// gitweb
	"cloneurl",
	// repo tool
	".repopickle_config",
	"clone.bundle",
	// editor/backup leftovers tolerated in practice
	"config.bak",
	"config_bak",
	"config~",
	"description~",
	"hooks_bk",
	"hooks.bak",
	"hooks-bak",
	"COMMIT_EDITMSG~",
	".gitignore",
	"pnt",
	"svn",
	"temp.patch",
}

// KnownNames is the set of member names a bare git tree may contain.
type KnownNames map[string]struct{}

// NewKnownNames builds the known-names set, extended with any extra
// names from configuration.
func NewKnownNames(extra ...string) KnownNames {
	k := make(KnownNames, len(defaultKnownNames)+len(extra))
	for _, name := range defaultKnownNames {
		k[name] = struct{}{}
	}
	for _, name := range extra {
		k[name] = struct{}{}
	}
	return k
}

// Contains reports whether name is a legitimate git tree member.
func (k KnownNames) Contains(name string) bool {
	_, ok := k[name]
	return ok
}

// MatchStrategy selects how exception entries are matched against a
// directory path.
type MatchStrategy string

const (
	// MatchBasename matches the final path component exactly.
	MatchBasename MatchStrategy = "basename"

	// MatchPrefix matches configured exception paths as full-path
	// prefixes. Legacy semantics, kept for compatibility.
	MatchPrefix MatchStrategy = "prefix"
)

// defaultExceptions holds directory basenames allowed to contain
// non-bare git trees and loose files without being reported.
var defaultExceptions = []string{"manifests", "repo", ".repo"}

// Exceptions is the set of directories exempt from non-bare and stray
// reporting.
type Exceptions struct {
	strategy MatchStrategy
	names    map[string]struct{}
	prefixes []string
}

// NewExceptions builds an exception matcher. With the basename strategy
// an empty entries list falls back to the default exception set; the
// prefix strategy has no defaults since prefixes are full paths.
func NewExceptions(strategy MatchStrategy, entries []string) (*Exceptions, error) {
	if strategy == "" {
		strategy = MatchBasename
	}
	switch strategy {
	case MatchBasename:
		if len(entries) == 0 {
			entries = defaultExceptions
		}
		names := make(map[string]struct{}, len(entries))
		for _, name := range entries {
			names[name] = struct{}{}
		}
		return &Exceptions{strategy: strategy, names: names}, nil
	case MatchPrefix:
		return &Exceptions{strategy: strategy, prefixes: entries}, nil
	default:
		return nil, fmt.Errorf("unknown match strategy %q: must be %q or %q", strategy, MatchBasename, MatchPrefix)
	}
}

// Excepted reports whether the directory at path is exempt from
// non-bare and stray reporting.
func (e *Exceptions) Excepted(path string) bool {
	switch e.strategy {
	case MatchPrefix:
		for _, prefix := range e.prefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
		return false
	default:
		_, ok := e.names[pathutil.Basename(path)]
		return ok
	}
}
