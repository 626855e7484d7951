package observability

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events as debug log lines.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger. A nil logger discards.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("loading records", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, personCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "source", source, "err", err)
		return
	}
	h.Logger.Debug("records loaded", "source", source, "persons", personCount, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, orientation string, personCount int) {
	h.Logger.Debug("layout started", "orientation", orientation, "persons", personCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, orientation string, nodeCount int, d time.Duration, err error) {
	h.Logger.Debug("layout done", "orientation", orientation, "nodes", nodeCount, "duration", d, "err", err)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("render done", "formats", formats, "duration", d, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "kind", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "kind", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "kind", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
