package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits for redshiftbar.log.
const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// SetupLogging points the standard logger at the rotated log file under
// ~/.redshiftbar/logs, and at stderr too when console is set. The returned
// closer closes the file.
func SetupLogging(prefix string, console bool) (io.Closer, error) {
	log.SetPrefix(prefix)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir: %w", err)
	}

	path, err := GlobalLogFile()
	if err != nil {
		return nil, err
	}

	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	if console {
		log.SetOutput(io.MultiWriter(os.Stderr, rotated))
	} else {
		log.SetOutput(rotated)
	}
	log.Printf("Logging to %s", path)
	return rotated, nil
}
