package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/openblocks/blocklink/pkg/buildinfo"
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time. Empty values keep the current setting.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}

// Execute runs the blocklink CLI with args and returns an error if any
// command fails. This is the main entry point for the CLI application.
//
// Logging goes to logw:
//   - Default: info level
//   - With --verbose (-v): debug level
//
// Command output goes to out.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
//	        fmt.Fprintln(os.Stderr, cli.FormatError(err))
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context, args []string, out, logw io.Writer) error {
	var verbose bool

	c := New(logw, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(logw)
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
