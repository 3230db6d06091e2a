// Package logfile is the structured logging backend: a Logfile routes
// entries to any number of routers (see package handler) after checking
// them against its configured level filter rules.
//
// A Logfile is configured once with a Config, typically assembled with
// the ConfigBuilder, and may be reconfigured at runtime. The active
// configuration is swapped atomically, so Submit never takes a lock.
//
//	lf, err := logfile.New(logfile.NewConfigBuilder().
//	    AddRouter(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})).
//	    AllowLevels(core.InfoLevel, core.CriticalLevel).
//	    Build())
//
//	lf.New(core.WarnLevel).Msg("disk almost full").Fields(core.Int("pct", 93)).Log()
//
// Every Logfile carries a Hierarchy that is stamped on the entries it
// produces. A Proxy extends that hierarchy with a named child and
// forwards to its parent; it exposes no configuration of its own.
package logfile
