package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	Reset      = "\033[0m"
	Red        = "\033[31m"
	Green      = "\033[32m"
	Yellow     = "\033[33m"
	Magenta    = "\033[35m"
	Cyan       = "\033[36m"
	White      = "\033[37m"
	BoldBlue   = "\033[1;34m"
	BoldWhite  = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: Cyan,
	slog.LevelInfo:  Green,
	slog.LevelWarn:  Yellow,
	slog.LevelError: Red,
}

type ctxKey string

// AnalysisIDKey carries the per-request analysis id through the pipeline.
const AnalysisIDKey ctxKey = "analysisID"

// ColoredHandler renders slog records as single colored lines, highlighting
// the analysis id when one is attached.
type ColoredHandler struct {
	h   slog.Handler
	out io.Writer
}

func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &ColoredHandler{
		h:   slog.NewTextHandler(w, opts),
		out: w,
	}
}

func (h *ColoredHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *ColoredHandler) Handle(ctx context.Context, r slog.Record) error {
	timeStr := r.Time.Format("15:04:05.000")

	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = White
	}
	levelStr := fmt.Sprintf("%-6s", strings.ToUpper(r.Level.String()))

	var line strings.Builder
	line.WriteString(fmt.Sprintf("%s%s%s ", Magenta, timeStr, Reset))
	line.WriteString(fmt.Sprintf("%s%s%s ", levelColor, levelStr, Reset))

	var hasAnalysisID bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "analysis_id" && a.Value.Kind() == slog.KindString {
			line.WriteString(fmt.Sprintf("%s[%s]%s ", BoldBlue, a.Value.String(), Reset))
			hasAnalysisID = true
		}
		return true
	})

	line.WriteString(fmt.Sprintf("%s%s%s ", BoldWhite, r.Message, Reset))

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "analysis_id" && hasAnalysisID {
			return true
		}
		val := a.Value.String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		line.WriteString(fmt.Sprintf("%s%s%s=%s ", Yellow, a.Key, Reset, val))
		return true
	})

	fmt.Fprintln(h.out, line.String())
	return nil
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ColoredHandler{h: h.h.WithAttrs(attrs), out: h.out}
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	return &ColoredHandler{h: h.h.WithGroup(name), out: h.out}
}

// Setup installs the colored handler as the default slog logger. The level
// comes from DOCSCAN_LOG_LEVEL (debug/info/warn/error), defaulting to info.
func Setup() *ColoredHandler {
	handler := NewColoredHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
	return handler
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("DOCSCAN_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetAnalysisID(ctx context.Context) string {
	if id, ok := ctx.Value(AnalysisIDKey).(string); ok {
		return id
	}
	return ""
}

func WithAnalysisID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, AnalysisIDKey, id)
}
