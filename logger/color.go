package logger

// ANSI escape sequences for terminal output.
const (
	ColorRed     = "\x1b[0;31m"
	ColorGreen   = "\x1b[0;32m"
	ColorYellow  = "\x1b[0;33m"
	ColorBlue    = "\x1b[0;34m"
	ColorMagenta = "\x1b[0;35m"
	ColorCyan    = "\x1b[0;36m"
	ColorBgGray  = "\x1b[0;100m"
	ColorReset   = "\x1b[0m"
)

type style struct {
	color string
	tag   string
}

// styles holds the canonical color and tag for each printable level.
var styles = map[Level]style{
	ErrorLevel: {color: ColorRed, tag: "E"},
	WarnLevel:  {color: ColorYellow, tag: "W"},
	InfoLevel:  {color: ColorGreen, tag: "I"},
	DebugLevel: {color: ColorBlue, tag: "D"},
}

func styleFor(level Level) style {
	return styles[level]
}
