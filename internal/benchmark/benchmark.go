package benchmark

import (
	"fmt"
	"os"
)

func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// GetEnv returns the value of the named environment variable, or defval
// when it is unset or empty
func GetEnv(name, defval string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defval
}
