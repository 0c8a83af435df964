package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mordilloSan/debuglog/logger"
)

// cli holds the demo flags. Defaults come from LOGGER_LEVEL and LOGGER_RAW.
type cli struct {
	Level logger.Level `default:"${level}" help:"Severity threshold (none, error, warn, info, debug)." short:"l"`
	Raw   bool         `default:"${raw}"   help:"Enable raw output."                                     negatable:""`
}

// Example demonstrating leveled and raw output.
// Usage: ./debuglog [--level=debug] [--raw]
func main() {
	envCfg, err := logger.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var flags cli
	kong.Parse(&flags,
		kong.Name("debuglog"),
		kong.Description("Print sample leveled and raw log output."),
		kong.UsageOnError(),
		kong.Vars{
			"level": envCfg.GeneralLevel.String(),
			"raw":   strconv.FormatBool(envCfg.RawEnabled),
		},
	)

	cfg := &logger.Config{GeneralLevel: flags.Level, RawEnabled: flags.Raw}

	logger.LogRaw(cfg, "debuglog: level=%s raw=%t\n", cfg.GeneralLevel, cfg.RawEnabled)

	logger.Errorf(cfg, "disk at %d%%", 91)
	logger.Warnf(cfg, "retrying in %v", 2*time.Second)
	logger.Infof(cfg, "hello %s", "world")
	logger.Debugf(cfg, "starting at %v", time.Now().Format(time.RFC3339))

	// Any color and tag can be used through LogLine.
	logger.LogLine(cfg, logger.InfoLevel, logger.ColorMagenta, "N", logger.CallerAt(0), "custom tag")

	// The config is read on every call, so changes apply immediately.
	previous := cfg.GeneralLevel
	cfg.GeneralLevel = logger.NoneLevel
	logger.Errorf(cfg, "suppressed while the level is NONE")
	cfg.GeneralLevel = previous

	logger.LogRaw(cfg, "%d bytes\n", 42)
}
