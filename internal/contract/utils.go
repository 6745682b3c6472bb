package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/sawamura/equisight/schema"
)

// Color variables for console output.
var (
	RankAColor = color.New(color.FgGreen, color.Bold) // top of the scale
	RankBColor = color.New(color.FgCyan, color.Bold)
	RankCColor = color.New(color.FgYellow)
	RankDColor = color.New(color.FgRed)
)

// GetColorRank returns a colored rank label for console output (table).
func GetColorRank(rank schema.Rank) string {
	switch rank {
	case schema.RankA:
		return RankAColor.Sprint(string(rank))
	case schema.RankB:
		return RankBColor.Sprint(string(rank))
	case schema.RankC:
		return RankCColor.Sprint(string(rank))
	default:
		return RankDColor.Sprint(string(rank))
	}
}

// ParseFloat parses a free-text numeric field. Empty or unparseable text
// returns nil, meaning "not supplied". Zero is a legal supplied value.
func ParseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseField parses a free-text numeric field, substituting def when the
// text is empty or malformed. Malformed fields never error (the pipeline
// must always produce an assessment).
func ParseField(s string, def float64) float64 {
	if v := ParseFloat(s); v != nil {
		return *v
	}
	return def
}

// SelectOutputFile returns the file handle for output. An empty path means
// stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetRunDBFilePath returns the default SQLite file path for the run store.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".equisight_runs.db"
	}
	return filepath.Join(homeDir, ".equisight_runs.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
