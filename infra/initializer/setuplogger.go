package initializer

import (
	"io"
	"log/slog"
	"strings"

	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelBadge struct {
	glyph string
	color lipgloss.AdaptiveColor
}

var levelBadges = map[log.Level]levelBadge{
	log.DebugLevel: {"🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
	log.InfoLevel:  {"ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	log.WarnLevel:  {"⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	log.ErrorLevel: {"❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
}

// keyLevels colours attribute keys like the level they usually show up with.
var keyLevels = map[string]log.Level{
	"error":    log.ErrorLevel,
	"warn":     log.WarnLevel,
	"stage":    log.WarnLevel,
	"attempt":  log.WarnLevel,
	"info":     log.InfoLevel,
	"source":   log.InfoLevel,
	"provider": log.InfoLevel,
	"debug":    log.DebugLevel,
	"run_id":   log.DebugLevel,
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

// formatterFor resolves LOG_FORMAT; unknown names fall back to text.
func formatterFor(name string) log.Formatter {
	if f, ok := formatters[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return log.TextFormatter
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	for lvl, b := range levelBadges {
		styles.Levels[lvl] = lipgloss.NewStyle().
			SetString(b.glyph).
			Bold(true).
			Padding(0, 1).
			Foreground(b.color)
	}
	for key, lvl := range keyLevels {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(levelBadges[lvl].color)
		value := lipgloss.NewStyle().Bold(true)
		if key == "run_id" {
			value = lipgloss.NewStyle().Faint(true)
		}
		styles.Values[key] = value
	}
	return styles
}

// SetupLogger builds the process logger, installs it as the slog default
// and returns it. Output goes to w. Caller reporting is only enabled below
// info level.
func SetupLogger(cfg config.Log, w io.Writer) *slog.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level < int(log.InfoLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatterFor(cfg.Format),
	})
	logger.SetStyles(logStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
