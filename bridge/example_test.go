package bridge_test

import (
	"log/slog"
	"os"

	"github.com/philipp01105/logfile"
	"github.com/philipp01105/logfile/bridge"
	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/formatter"
	"github.com/philipp01105/logfile/handler/consolehandler"
)

func Example() {
	lf, err := logfile.New(logfile.NewConfigBuilder().
		AddRouter(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    os.Stdout,
			Formatter: formatter.NewJSONFormatter(formatter.Config{AppName: "shop"}),
		})).
		BlockLevels(core.TraceLevel).
		Build())
	if err != nil {
		panic(err)
	}
	defer lf.Close()

	provider, err := bridge.NewStandardProvider(lf)
	if err != nil {
		panic(err)
	}
	defer provider.Close()

	orders, err := provider.CreateLogger("Orders")
	if err != nil {
		panic(err)
	}
	if orders.IsEnabled(bridge.Information) {
		orders.Log(bridge.Information, bridge.EventID{ID: 7, Name: "Started"},
			"order placed", nil, bridge.DefaultFormatter)
	}
}

func ExampleNewSlogHandler() {
	lf, err := logfile.New(logfile.NewConfigBuilder().
		AddRouter(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stdout})).
		Build())
	if err != nil {
		panic(err)
	}
	defer lf.Close()

	provider, err := bridge.NewStandardProvider(lf)
	if err != nil {
		panic(err)
	}
	l, err := provider.CreateLogger("http")
	if err != nil {
		panic(err)
	}

	logger := slog.New(bridge.NewSlogHandler(l))
	logger.Info("listening", "addr", ":8080")
}
