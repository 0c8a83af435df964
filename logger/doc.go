// Package logger provides a small leveled console logger that prints
// color-coded lines tagged with the calling file, function and line.
//
// # Console Output
//
// Leveled lines go to standard output in the form
//
//	<color><tag> <file> : <function> (<line>)- <message><reset>
//
// where tag is E, W, I or D. Each call is written in one piece and flushed
// before it returns.
//
// # Configuration
//
// A Config is owned by the caller and passed to every call. Change its fields
// whenever you like; they are read on each call:
//
//	cfg := &logger.Config{GeneralLevel: logger.WarnLevel}
//	logger.Errorf(cfg, "disk at %d%%", 91) // printed
//	logger.Debugf(cfg, "cache miss")       // suppressed
//	cfg.GeneralLevel = logger.DebugLevel   // now printed
//
// LoadConfig reads the same settings from LOGGER_LEVEL and LOGGER_RAW.
//
// # Raw Output
//
// LogRaw prints its formatted message untouched, gated only by
// Config.RawEnabled:
//
//	cfg.RawEnabled = true
//	logger.LogRaw(cfg, "%d bytes\n", 42)
//
// The level functions are printf wrappers, so go vet checks their format
// strings against the arguments.
package logger
