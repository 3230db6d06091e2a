// Package config builds a Logfile from a YAML or JSON document.
//
//	app_name: shop
//	levels:
//	  allow: [information, critical]
//	console:
//	  enabled: true
//	  format: text
//	file:
//	  enabled: true
//	  path: ./logs
//	  keep_logfiles: 1
//	  size_limit: 10485760
//
// Load and LoadFile parse and validate a document; Config.Build creates
// the Logfile with a console and/or a rotating file router. A Watcher
// re-reads the file on change and swaps the Logfile's level filters
// without touching its routers.
package config
