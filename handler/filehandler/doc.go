// Package filehandler provides the file router, which writes formatted
// log entries to a file rotated by size through lumberjack. Old backups
// are pruned by count and age and may be gzip compressed.
//
// Like the console router it writes synchronously by default and through
// a bounded queue when Async is set.
package filehandler
