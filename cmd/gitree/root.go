package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitree/internal/classify"
	"github.com/raphi011/gitree/internal/config"
	"github.com/raphi011/gitree/internal/log"
	"github.com/raphi011/gitree/internal/output"
	"github.com/raphi011/gitree/internal/pathutil"
	"github.com/raphi011/gitree/internal/ui/styles"
)

var (
	// Global flags
	verbose   bool
	colorMode string

	// Mode flags; exactly one must be set
	layoutCheck bool
	findNonBare bool
	findStray   bool

	// Shared state injected into commands
	cfg config.Config
)

// rootCmd represents the base command; running it performs the walk
var rootCmd = &cobra.Command{
	Use:   "gitree (-1 | -2 | -3) <path>",
	Short: "Audit a directory tree for bare Git repository conformance",
	Long: `gitree walks a directory tree and classifies each subtree as a bare
Git repository or an ordinary directory.

Modes (exactly one required):
  -1  layout conformance check: warn about git tree members that break
      the Git repo layout rule and git dirs not terminated with .git,
      then print summary counters
  -2  list directories holding a non-bare git tree (one path per line)
  -3  list files found outside any git tree (one "path/name" per line)

Warnings and listings are findings, not failures: the exit code is 0
whenever the walk completes. The walk aborts with a nonzero exit when a
directory cannot be listed or an entry's type cannot be determined.`,
	Example: `  gitree -1 /srv/git          # conformance check all mirrors
  gitree -2 /srv/git          # find working copies among the mirrors
  gitree -3 /srv/git          # find loose files`,
	Args:                       cobra.ExactArgs(1),
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	RunE: runWalk,
}

// Assigned in init to avoid an initialization cycle: the closure refers
// back to rootCmd.
func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	switch colorMode {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: must be \"auto\", \"always\" or \"never\"", colorMode)
	}

	// The config subcommand must work with a broken config file
	if cmd != rootCmd {
		return nil
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	ctx := cmd.Context()
	ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose))
	ctx = output.WithPrinter(ctx, findingsWriter())
	cmd.SetContext(ctx)
	return nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	mode, err := selectedMode()
	if err != nil {
		return err
	}
	root := pathutil.NormalizeRoot(args[0])

	exceptions, err := classify.NewExceptions(classify.MatchStrategy(cfg.MatchStrategy), cfg.Exceptions)
	if err != nil {
		return err
	}

	classifier := classify.New(classify.Options{
		Mode:       mode,
		Known:      classify.NewKnownNames(cfg.ExtraKnownNames...),
		Exceptions: exceptions,
		MaxEntries: cfg.MaxEntries,
	}, out)

	report, err := classifier.Walk(ctx, root)
	if err != nil {
		return err
	}

	if mode == classify.LayoutCheck {
		out.Printf("\n%s\n", styles.HeaderStyle.Render("Check Result:"))
		out.Printf("%d %s\n", report.LayoutViolations, styles.MutedStyle.Render("files break Git repo layout rule"))
		out.Printf("%d %s\n", report.MisnamedGitDirs, styles.MutedStyle.Render("git dirs name not terminated with .git"))
	}
	return nil
}

// selectedMode maps the mode flags to a classify.Mode. Cobra enforces
// that exactly one is set.
func selectedMode() (classify.Mode, error) {
	switch {
	case layoutCheck:
		return classify.LayoutCheck, nil
	case findNonBare:
		return classify.FindNonBare, nil
	case findStray:
		return classify.FindStray, nil
	}
	return 0, errors.New("one of -1, -2 or -3 is required")
}

// findingsWriter wraps stdout according to the color setting. Styled
// output is stripped when piped or when color is off.
func findingsWriter() io.Writer {
	switch colorMode {
	case "always":
		return styles.Writer(os.Stdout, os.Environ())
	case "never":
		return styles.PlainWriter(os.Stdout)
	}
	if cfg.Color == "always" {
		return styles.Writer(os.Stdout, os.Environ())
	}
	if cfg.Color == "never" || !(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		return styles.PlainWriter(os.Stdout)
	}
	return styles.Writer(os.Stdout, os.Environ())
}

// exitCode maps fatal errors to process exit codes. An undeterminable
// entry type gets its own code so operators can tell environment
// corruption from plain permission problems.
func exitCode(err error) int {
	var unknown *classify.UnknownEntryError
	if errors.As(err, &unknown) {
		return 2
	}
	return 1
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gitree:", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gitree -h' for help")
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each directory as it is scanned")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Color output: auto, always or never (overrides config)")

	// Mode flags
	rootCmd.Flags().BoolVarP(&layoutCheck, "layout-check", "1", false, "Check Git repo layout conformance")
	rootCmd.Flags().BoolVarP(&findNonBare, "find-non-bare", "2", false, "List non-bare git trees")
	rootCmd.Flags().BoolVarP(&findStray, "find-stray", "3", false, "List files outside any git tree")
	rootCmd.MarkFlagsOneRequired("layout-check", "find-non-bare", "find-stray")
	rootCmd.MarkFlagsMutuallyExclusive("layout-check", "find-non-bare", "find-stray")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newConfigCmd())
}
