package shutdown

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jsamuelsen11/graceful-shutdown/internal/platform/logging"
)

// DefaultGraceSeconds is used when no source yields a usable value.
const DefaultGraceSeconds = 5

// Source yields the raw grace period text from one configuration layer.
// Lookup reports false when the layer has no value.
type Source interface {
	Name() string
	Lookup() (string, bool)
}

type source struct {
	name   string
	lookup func() (string, bool)
}

func (s source) Name() string           { return s.name }
func (s source) Lookup() (string, bool) { return s.lookup() }

// NewSource adapts a lookup function into a [Source].
func NewSource(name string, lookup func() (string, bool)) Source {
	return source{name: name, lookup: lookup}
}

// StaticSource returns a source holding a fixed value. An empty or
// whitespace-only value counts as absent.
func StaticSource(name, value string) Source {
	return NewSource(name, func() (string, bool) {
		return value, strings.TrimSpace(value) != ""
	})
}

// FlagSource reads a command-line flag. The flag only counts as present when
// it was set explicitly, so its default never shadows lower layers.
func FlagSource(fs *pflag.FlagSet, name string) Source {
	return NewSource("flag --"+name, func() (string, bool) {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			return "", false
		}
		return f.Value.String(), true
	})
}

// GracePeriodResolver resolves the drain wait in whole seconds from an
// ordered list of sources, highest priority first. It holds no state
// between calls.
type GracePeriodResolver struct {
	sources  []Source
	fallback int
	logger   *slog.Logger
}

// NewGracePeriodResolver creates a resolver that consults sources in order
// and falls back to fallbackSeconds. A negative fallback is a programming
// error and panics.
func NewGracePeriodResolver(fallbackSeconds int, logger *slog.Logger, sources ...Source) *GracePeriodResolver {
	if fallbackSeconds < 0 {
		panic(fmt.Sprintf("shutdown: negative fallback grace period %d", fallbackSeconds))
	}
	logger = logging.OrDiscard(logger)
	return &GracePeriodResolver{
		sources:  sources,
		fallback: fallbackSeconds,
		logger:   logger,
	}
}

// Resolve returns the first usable value among the sources, or the
// fallback. Absent, malformed and negative values are skipped; malformed
// and negative ones are logged.
func (r *GracePeriodResolver) Resolve() int {
	for _, src := range r.sources {
		raw, ok := src.Lookup()
		if !ok {
			continue
		}

		seconds, err := parseSeconds(raw)
		if err != nil {
			r.logger.Warn("ignoring grace period value",
				slog.String("source", src.Name()),
				slog.String("value", raw),
				slog.Any("error", err),
			)
			continue
		}

		r.logger.Debug("grace period resolved",
			slog.String("source", src.Name()),
			slog.Int("seconds", seconds),
		)
		return seconds
	}

	return r.fallback
}

func parseSeconds(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("empty value")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing seconds: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("seconds must not be negative, got %d", n)
	}
	return n, nil
}
