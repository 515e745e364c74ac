package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag"

// filteringHandler drops records by tag, package or file before passing them on.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// passes applies one enabled/disabled pair. Disabled wins; an enabled set
// admits only its members. An empty key only fails a non-empty enabled set.
func passes(enabled, disabled map[string]struct{}, key string) bool {
	key = strings.ToLower(key)
	if _, found := disabled[key]; found && key != "" {
		return false
	}
	if enabled != nil {
		_, found := enabled[key]
		return found
	}
	return true
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	pkg, file := recordSource(r)
	tag := recordTag(r)

	reason := ""
	switch {
	case pkg != "" && !passes(h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, pkg):
		reason = "package " + pkg
	case file != "" && !passes(h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, file):
		reason = "file " + file
	case !passes(h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, tag):
		reason = "tag '" + tag + "'"
	}

	if reason != "" {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped %q: %s\n", r.Message, reason)
		}
		return nil
	}
	return h.baseHandler.Handle(ctx, r)
}

// recordSource resolves the package directory and file of the record's caller.
func recordSource(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}

func recordTag(r slog.Record) string {
	tag := ""
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			return false
		}
		return true
	})
	return tag
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
