package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// PrettyFormatter formats log entries in a human-readable way for terminal output.
// The tool field, when present, is printed in bold right after the message.
type PrettyFormatter struct {
	NoColor bool
}

// Format renders a logrus entry as a pretty, human-readable line.
func (f *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("15:04:05")

	var levelIcon string
	var levelColor string
	switch entry.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelIcon = "✗"
		levelColor = colorRed
	case logrus.WarnLevel:
		levelIcon = "⚠"
		levelColor = colorYellow
	case logrus.InfoLevel:
		levelIcon = "•"
		levelColor = colorGreen
	case logrus.DebugLevel, logrus.TraceLevel:
		levelIcon = "·"
		levelColor = colorGray
	}

	var b strings.Builder
	b.WriteString(f.paint(colorGray, timestamp))
	b.WriteString(" ")
	b.WriteString(f.paint(levelColor, levelIcon))
	b.WriteString(" ")
	b.WriteString(entry.Message)

	if tool, ok := entry.Data["tool"]; ok {
		b.WriteString(" ")
		b.WriteString(f.paint(colorBold, fmt.Sprint(tool)))
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "tool" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fmt.Sprint(entry.Data[k])
		if k == "status" {
			v = f.paint(statusColor(v), v)
		}
		fmt.Fprintf(&b, " %s=%s", f.paint(colorCyan, k), v)
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func (f *PrettyFormatter) paint(color, s string) string {
	if f.NoColor || color == "" {
		return s
	}
	return color + s + colorReset
}

func statusColor(status string) string {
	if status == "success" {
		return colorGreen
	}
	return colorRed
}

// NewLogger creates a configured logrus logger writing to stderr. Stdout is
// reserved for the stdio MCP transport.
func NewLogger(level string, format string) *logrus.Logger {
	logger := logrus.New()
	Configure(logger, os.Stderr, level, format)
	return logger
}

// Configure sets output, format, and level on an existing logger.
func Configure(logger *logrus.Logger, out io.Writer, level string, format string) {
	if out != nil {
		logger.SetOutput(out)
	}
	setFormatter(logger, format)
	setLevel(logger, level)
}

// ConfigureStandard configures the logrus standard logger for the server.
func ConfigureStandard(level string, format string) {
	Configure(logrus.StandardLogger(), os.Stderr, level, format)
}

func setFormatter(logger *logrus.Logger, format string) {
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "pretty":
		logger.SetFormatter(&PrettyFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
}

func setLevel(logger *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}
