// Package logging provides structured logging for gridmenu.
//
// This package wraps a zap logger with convenience functions shared by the
// menu engine, the terminal simulator, and the remote input bridge.
//
// # Configuration
//
// Logging is silent by default so zap output never corrupts the simulator's
// terminal rendering. It is enabled through environment variables:
//
//   - GRIDMENU_LOG_LEVEL: "debug", "info", "warn" or "error". Unset or empty
//     means no output at all.
//   - GRIDMENU_LOG_FILE: path to append log output to. When unset, output
//     goes to stderr, which is only sensible for non-interactive commands.
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("live value pushed",
//	    zap.String("setting", "IF"),
//	    zap.String("value", "4500"),
//	    zap.Bool("accepted", true),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
