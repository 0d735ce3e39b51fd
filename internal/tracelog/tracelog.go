// Package tracelog writes SOAP wire traffic to a rotating log file.
package tracelog

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger appends timestamped request/response envelopes to a rotating
// file. Safe for use as a trace hook on a single client.
type Logger struct {
	out *lumberjack.Logger
}

// New creates a trace logger writing to logPath. Rotation limits can be
// tuned with JSOAP_TRACE_MAX_SIZE (MB), JSOAP_TRACE_MAX_BACKUPS and
// JSOAP_TRACE_MAX_AGE (days).
func New(logPath string) *Logger {
	return &Logger{
		out: &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    getEnvInt("JSOAP_TRACE_MAX_SIZE", 10),
			MaxBackups: getEnvInt("JSOAP_TRACE_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("JSOAP_TRACE_MAX_AGE", 7),
			Compress:   true,
		},
	}
}

// Record writes one envelope. callID pairs a request with its response,
// direction is "send" or "recv".
func (l *Logger) Record(callID, direction, method string, payload []byte) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(l.out, "[%s] %s %s %s\n%s\n", timestamp, callID, direction, method, payload)
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	return l.out.Close()
}

func getEnvInt(name string, fallback int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
