package util
import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

/*
 * a small leveled logger. Lines go to the configured file when there is one,
 * to the writer the logger was built with otherwise.
 */
const (
	Error   = 1
	Warning = 2
	Info    = 4

	RedColor    = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor  = "\033[32m"
	CyanColor   = "\033[36m"
	ResetColor  = "\033[0m"
)

type LoggerInfo struct {
	Filename  string `yaml:"filename"`
	IsColored bool   `yaml:"is_colored"`
	SaveTime  bool   `yaml:"save_time"`
	Mode      uint8  `yaml:"mode"`
}

type Logger struct {
	li      *LoggerInfo
	out     io.Writer
	colored bool
	mtx     sync.Mutex
}

// NewLogger logs to stderr unless li names a file.
func NewLogger(li *LoggerInfo) *Logger {
	return NewLoggerTo(li, os.Stderr)
}

func NewLoggerTo(li *LoggerInfo, out io.Writer) *Logger {
	colored := false
	if li.IsColored && li.Filename == "" {
		// no escape codes in pipes and files
		if f, ok := out.(interface{ Fd() uintptr }); ok {
			colored = term.IsTerminal(int(f.Fd()))
		}
	}
	return &Logger{
		li:      li,
		out:     out,
		colored: colored,
	}
}

func (l *Logger) colorize(line string, color string) string {
	if l.colored {
		return color + line + ResetColor
	}
	return line
}

func (l *Logger) prepareString(str string, clr string) string {
	toWrite := l.colorize(str, clr) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format(time.RFC3339) + " "
	}
	return toWrite
}

func (l *Logger) LogString(s string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.li.Filename == "" {
		fmt.Fprintln(l.out, s)
		return
	}
	// just append line
	f, err := os.OpenFile(l.li.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err == nil {
		defer f.Close()
		f.WriteString(s + "\n")
	}
}

func (l *Logger) LogError(err error) {
	if l.li.Mode&Error == Error {
		toWrite := l.prepareString("[ERROR]", RedColor) + err.Error()
		l.LogString(toWrite)
	}
}

func (l *Logger) LogWarning(warning string) {
	if l.li.Mode&Warning == Warning {
		toWrite := l.prepareString("[WARNING]", YellowColor) + warning
		l.LogString(toWrite)
	}
}

func (l *Logger) LogInfo(info string) {
	if l.li.Mode&Info == Info {
		toWrite := l.prepareString("[INFO]", CyanColor) + info
		l.LogString(toWrite)
	}
}
