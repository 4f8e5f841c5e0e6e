package logging

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
)

// Formatter that is called on by logrus.
type VMDeployFormatter struct {
	// DisableColors allows disabling colored level output
	DisableColors bool
}

func (f *VMDeployFormatter) isColored() bool {
	isColored := runtime.GOOS != "windows"

	return isColored && !f.DisableColors
}

// Format the log entry. Implements logrus.Formatter.
func (f *VMDeployFormatter) Format(entry *logrus.Entry) ([]byte, error) {

	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	line := &strings.Builder{}

	fmt.Fprintf(line, "[%s] ", strings.ToUpper(entry.Level.String()))

	if step, ok := entry.Data["step"]; ok {
		fmt.Fprintf(line, "(%v %v)   ", step, entry.Data["resourceGroup"])
	}

	line.WriteString(entry.Message)

	if err, ok := entry.Data["error"]; ok {
		fmt.Fprintf(line, "   (%s)", err)
	}

	if f.isColored() {
		b.WriteString(levelColor(entry.Level).Render(line.String()))
	} else {
		b.WriteString(line.String())
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelColor(lvl logrus.Level) color.Color {
	switch lvl {
	case logrus.DebugLevel, logrus.TraceLevel:
		return color.Gray
	case logrus.WarnLevel:
		return color.Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return color.Red
	default:
		return color.Green
	}
}

// NewLogger builds the process logger. LOG_FORMAT=JSON switches to structured output and
// LOG_DISABLE_COLORS=true turns off colored levels.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()

	// Log as JSON instead of the default ASCII formatter.
	if os.Getenv("LOG_FORMAT") == "JSON" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		logger.SetFormatter(&VMDeployFormatter{
			DisableColors: os.Getenv("LOG_DISABLE_COLORS") == "true",
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err == nil {
		logger.SetLevel(lvl)
	}

	return logger
}
