package output

import "os"

// GetLogFilePath returns the log file configured through REPOSTAT_LOG_FILE,
// or "" when file logging is disabled.
func GetLogFilePath() string {
	return os.Getenv("REPOSTAT_LOG_FILE")
}

// DebugEnabled reports whether the DEBUG environment variable asks for debug output
func DebugEnabled() bool {
	return os.Getenv("DEBUG") != ""
}
