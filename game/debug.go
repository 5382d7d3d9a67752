package game

import (
	"log"
	"os"
	"path/filepath"
)

// debugLog is nil unless BANMEN_DEBUG is set; the TUI owns the terminal, so
// diagnostics go to a file instead of stderr.
var debugLog *log.Logger

func init() {
	if os.Getenv("BANMEN_DEBUG") == "" {
		return
	}
	f, err := os.Create(filepath.Join(os.TempDir(), "banmen-debug.log"))
	if err != nil {
		return
	}
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)
}

func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}
