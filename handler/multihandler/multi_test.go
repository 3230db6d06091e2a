package multihandler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/formatter"
	"github.com/philipp01105/logfile/handler/consolehandler"
)

type failingHandler struct {
	err    error
	closed bool
}

func (f *failingHandler) Handle(*core.Entry) error { return f.err }
func (f *failingHandler) Close() error             { f.closed = true; return f.err }

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	h1 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    &buf1,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	h2 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    &buf2,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	multi := NewMultiHandler(h1, nil, h2)
	defer multi.Close()

	if n := len(multi.Handlers()); n != 2 {
		t.Fatalf("expected nil handlers to be skipped, got %d handlers", n)
	}

	err := multi.Handle(&core.Entry{Level: core.InfoLevel, Message: "multi test"})
	if err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if !strings.Contains(buf1.String(), "multi test") {
		t.Error("First handler did not receive message")
	}

	if !strings.Contains(buf2.String(), "multi test") {
		t.Error("Second handler did not receive message")
	}
}

func TestMultiHandler_CombinesErrors(t *testing.T) {
	var buf bytes.Buffer
	errA, errB := errors.New("a"), errors.New("b")
	fa, fb := &failingHandler{err: errA}, &failingHandler{err: errB}
	ok := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf})

	multi := NewMultiHandler(fa, ok, fb)

	err := multi.Handle(&core.Entry{Level: core.ErrorLevel, Message: "still delivered"})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both errors, got %v", err)
	}
	if len(multierr.Errors(err)) != 2 {
		t.Errorf("expected 2 combined errors, got %d", len(multierr.Errors(err)))
	}
	if !strings.Contains(buf.String(), "still delivered") {
		t.Error("a failing sibling must not stop delivery")
	}

	if err := multi.Close(); !errors.Is(err, errA) {
		t.Errorf("Close() error = %v", err)
	}
	if !fa.closed || !fb.closed {
		t.Error("every handler must be closed")
	}
}
