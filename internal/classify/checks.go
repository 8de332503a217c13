package classify

import (
	"fmt"
	"os"

	"github.com/raphi011/gitree/internal/ui/styles"
)

// checkLayout warns for every immediate member of an established git
// root that is not in the known-names set. The directory is re-listed
// here; the caller only inspected subdirectory presence.
func (c *Classifier) checkLayout(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	for _, ent := range entries {
		if c.opts.Known.Contains(ent.Name()) {
			continue
		}
		c.warnf("%s/%s breaks Git repo layout rule", path, ent.Name())
		c.report.LayoutViolations++
	}
	return nil
}

// checkNonBare reports the directory containing a working copy's .git
// directory, unless that directory is excepted.
func (c *Classifier) checkNonBare(parent string) {
	if c.opts.Exceptions.Excepted(parent) {
		return
	}
	c.out.Println(parent)
	c.report.NonBareTrees++
}

func (c *Classifier) warnf(format string, args ...any) {
	c.out.Printf("%s %s\n", styles.WarningStyle.Render("WARNING:"), fmt.Sprintf(format, args...))
}
