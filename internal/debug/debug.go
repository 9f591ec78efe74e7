package debug

import (
	"fmt"
	"log"
	"os"

	"github.com/cjeanneret/BeamGo/internal/logic/geometry"
)

// Debug levels
const (
	LevelOff     = 0 // No output
	LevelInfo    = 1 // Important info (geometry in use, results)
	LevelLive    = 2 // Live info (sweep samples)
	LevelVerbose = 3 // Verbose (calculation details)
)

var (
	level  int
	logger *log.Logger
)

// Init initializes the debug system with a level (0-3).
// 0 = no output
// 1 = important info (mounting geometry, result summary)
// 2 = live info (per-sample sweep output)
// 3 = verbose (calculation details)
func Init(debugLevel int) {
	level = debugLevel
	if level > LevelOff {
		logger = log.New(os.Stderr, "[BeamGo] ", log.LstdFlags|log.Lmicroseconds)
	}
}

// Level returns the current debug level.
func Level() int {
	return level
}

// IsEnabled returns true if debug level is >= the requested level.
func IsEnabled(minLevel int) bool {
	return level >= minLevel
}

// --- Level 1 functions (Info) ---

// Info prints a level 1 message (important info).
func Info(format string, args ...interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] "+format, args...)
	}
}

// Beams prints a one-line summary of the four beam angles (level 1).
func Beams(label string, b geometry.BeamAngles) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] %s: fore=%.3f port=%.3f aft=%.3f stbd=%.3f",
			label, b.Fore, b.Port, b.Aft, b.Starboard)
	}
}

// Value prints a named value in formatted form (level 1).
func Value(name string, value interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO]   %s = %v", name, value)
	}
}

// Error prints a debug error (level 1+).
func Error(err error) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[ERROR] %v", err)
	}
}

// --- Level 2 functions (Live) ---

// Live prints a level 2 message (live info).
func Live(format string, args ...interface{}) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] "+format, args...)
	}
}

// Sample prints one sweep sample (level 2).
func Sample(i, total int, pitchDeg float64) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] Sample %d/%d: pitch=%.3f", i, total, pitchDeg)
	}
}

// --- Level 3 functions (Verbose) ---

// Verbose prints a level 3 message (verbose).
func Verbose(format string, args ...interface{}) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] "+format, args...)
	}
}

// PrintStruct prints a struct in formatted form (level 3).
func PrintStruct(name string, v interface{}) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] %s: %+v", name, v)
	}
}

// Section prints a section separator (level 3).
func Section(name string) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		logger.Printf("  %s", name)
		logger.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	}
}

// Fmt is a helper function that returns a formatted string
// only if debug is enabled (to avoid unnecessary allocations).
func Fmt(format string, args ...interface{}) string {
	if level > 0 {
		return fmt.Sprintf(format, args...)
	}
	return ""
}
