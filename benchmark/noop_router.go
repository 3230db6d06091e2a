package benchmark

import (
	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/handler"
)

// noopRouter measures the bridge and backend without any formatting cost.
type noopRouter struct{}

func newNoopRouter() handler.Handler {
	return noopRouter{}
}

func (noopRouter) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (noopRouter) Close() error {
	return nil
}
