package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// levelStyle is the tag and color a record is printed with. Tags follow cargo's
// diagnostics.
type levelStyle struct {
	tag   string
	color lipgloss.Color
}

var (
	infoStyle  = levelStyle{color: lipgloss.Color("#667085")}
	warnStyle  = levelStyle{tag: "warning: ", color: lipgloss.Color("#F59E0B")}
	errorStyle = levelStyle{tag: "error: ", color: lipgloss.Color("#D93025")}
)

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return errorStyle
	case level >= slog.LevelWarn:
		return warnStyle
	default:
		return infoStyle
	}
}

// PrettyHandler is a slog.Handler that produces human-readable, colored output.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   termenv.NewOutput(w, termenv.WithProfile(colorProfile(w)), termenv.WithTTY(true)),
		level: levelVar,
	}
}

// colorProfile disables colors for NO_COLOR and for file descriptors that are not terminals.
// Other writers, such as buffers in tests, follow the environment.
func colorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	style := styleFor(r.Level)
	color := termenv.RGBColor(string(style.color))
	msg := r.Message

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})

	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	line := h.out.String(msg).Foreground(color).String()
	if style.tag != "" {
		line = h.out.String(style.tag).Foreground(color).Bold().String() + line
	}
	_, err := h.out.WriteString(line + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: group,
	}
}

// formatAttr renders key=value, prefixing the key with the group and
// flattening nested groups.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		parts := make([]string, 0, len(attr.Value.Group()))
		for _, a := range attr.Value.Group() {
			parts = append(parts, formatAttr(key, a))
		}
		return strings.Join(parts, " ")
	}
	return key + "=" + attr.Value.String()
}
