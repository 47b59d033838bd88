package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/observability"
)

// logHooks forwards observability events to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnCheck(block.ID, block.ID, bool) {}

func (h logHooks) OnMatchStart(dragged block.ID, candidates int) {
	h.logger.Debug("matching", "dragged", dragged, "candidates", candidates)
}

func (h logHooks) OnMatchComplete(dragged, neighbor block.ID, distance float64, found bool, d time.Duration) {
	if !found {
		h.logger.Debug("no match", "dragged", dragged, "took", d)
		return
	}
	h.logger.Debug("matched", "dragged", dragged, "neighbor", neighbor, "distance", distance, "took", d)
}

func (h logHooks) OnLoad(kind, path string, items int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "kind", kind, "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded", "kind", kind, "path", path, "items", items, "took", d.Round(time.Microsecond))
}

var (
	_ observability.LinkHooks = logHooks{}
	_ observability.LoadHooks = logHooks{}
)
