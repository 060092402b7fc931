package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Log output goes to per-level daily files under logs/, e.g.
// logs/shopcore-info-2026-08-30.log. Handlers log through LogInfo and
// friends; before InitLogger runs (or if it fails) those are no-ops.
const logDir = "logs"

var (
	infoLog  *log.Logger
	errorLog *log.Logger
	debugLog *log.Logger
)

func openLogFile(level, day string) (*os.File, error) {
	name := filepath.Join(logDir, fmt.Sprintf("shopcore-%s-%s.log", level, day))
	return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// InitLogger opens today's log files. Call once at startup.
func InitLogger() error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	day := time.Now().Format("2006-01-02")

	infoFile, err := openLogFile("info", day)
	if err != nil {
		return fmt.Errorf("open info log: %w", err)
	}
	errorFile, err := openLogFile("error", day)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	debugFile, err := openLogFile("debug", day)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	infoLog = log.New(infoFile, "[INFO] ", log.LstdFlags|log.Lshortfile)
	errorLog = log.New(errorFile, "[ERROR] ", log.LstdFlags|log.Lshortfile)
	debugLog = log.New(debugFile, "[DEBUG] ", log.LstdFlags|log.Lshortfile)

	return nil
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	if infoLog != nil {
		infoLog.Printf(format, v...)
	}
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	if errorLog != nil {
		errorLog.Printf(format, v...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, v...)
	}
}
