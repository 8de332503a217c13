package classify

// Report accumulates the walk's counters. It is threaded through the
// traversal rather than held in globals so a classifier can be tested
// in isolation.
type Report struct {
	// LayoutViolations counts git tree members outside the known-names set.
	LayoutViolations int

	// MisnamedGitDirs counts git roots whose name is not terminated with .git.
	MisnamedGitDirs int

	// NonBareTrees counts working copies found where bare trees are expected.
	NonBareTrees int

	// StrayFiles counts regular files found outside any git tree.
	StrayFiles int
}
