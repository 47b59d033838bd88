// Package cli implements the blocklink command-line interface.
//
// This package provides commands for checking which connectors of two
// blocks may link, for finding the link a dragged block would snap to, and
// for listing the configured rule set. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Evaluate every connector pair between two blocks of a scene
//   - match: Find the best link for a dragged block against the rest of a scene
//   - rules: Print the configured rule set in evaluation order
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes rejected pairs and matching timings. Loggers are passed through
// context.Context.
//
// # Example
//
//	import "github.com/openblocks/blocklink/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger returns the CLI logger: timestamped, prefixed with the program
// name and filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs one completed step with its elapsed time. Not safe for
// concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and an elapsed field, e.g.
//
//	blocklink: check complete pairs=6 elapsed=2ms
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// commandLogger returns the logger attached to cmd's context. Commands run
// without the root pre-run hook get an info-level logger on cmd's error
// stream instead.
func commandLogger(cmd *cobra.Command) *log.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
			return l
		}
	}
	return newLogger(cmd.ErrOrStderr(), log.InfoLevel)
}
