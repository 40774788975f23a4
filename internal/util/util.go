// Package util holds small formatting helpers for command line output.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Checksum returns the hex SHA256 of data, printed next to written backups.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size)
	for _, unit := range []string{"KB", "MB", "GB", "TB"} {
		value /= 1024
		if value < 1024 || unit == "TB" {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}

	return fmt.Sprintf("%d B", size)
}

// FormatAge renders how long ago something happened with the two largest
// units, e.g. "45s", "2m30s", "1h30m" or "3d4h".
func FormatAge(age time.Duration) string {
	age = age.Round(time.Second)
	if age < 0 {
		age = 0
	}

	switch {
	case age < time.Minute:
		return fmt.Sprintf("%ds", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm%ds", int(age.Minutes()), int(age.Seconds())%60)
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh%dm", int(age.Hours()), int(age.Minutes())%60)
	default:
		days := int(age.Hours()) / 24

		return fmt.Sprintf("%dd%dh", days, int(age.Hours())%24)
	}
}
