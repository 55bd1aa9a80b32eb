package utils

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
)

func GetRealIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// ConvertToInt parses a path or form value, naming it in the error.
func ConvertToInt(s string, objName string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number(%s): %s", objName, s)
	}
	return result, nil
}

// ParseInt safely parses a string to int with bounds checking.
// Usage: ParseInt("500", 0, 0, 4096) -> Returns 500
// Usage: ParseInt("abc", 0, 0, 4096) -> Returns 0 (Default)
// Usage: ParseInt("9999", 0, 0, 4096) -> Returns 4096 (Max)
func ParseInt(value string, def int, min int, max int) int {
	if value == "" {
		return def
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
