package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/logfile/core"
)

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return format(entry, f.formatToBuffer), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return formatTo(entry, w, f.formatToBuffer)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel:    " [TRACE] ",
	core.DebugLevel:    " [DEBUG] ",
	core.InfoLevel:     " [INFO] ",
	core.WarnLevel:     " [WARN] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if f.AppName != "" {
		buf.WriteByte('(')
		buf.WriteString(f.AppName)
		buf.WriteString(") ")
	}

	if entry.EventID != nil && !entry.EventID.IsZero() {
		buf.WriteByte('<')
		buf.WriteString(entry.EventID.String())
		buf.WriteString("> ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	if entry.Exception != nil {
		buf.WriteString(" exception=")
		buf.WriteString(entry.Exception.Error())
	}

	if f.IncludeHierarchy && len(entry.Hierarchy) > 0 {
		buf.WriteString(" hierarchy=")
		buf.WriteString(entry.Hierarchy.String())
	}

	buf.WriteByte('\n')
}
