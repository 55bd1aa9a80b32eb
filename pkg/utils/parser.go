// Package utils provides small helpers shared by the server and the CLI:
// request parsing, JSON responses, size parsing and placeholder rendering.
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lightlock/pkg/logger"
)

var sizeRegex = regexp.MustCompile(`^(\d+)\s*([a-zA-Z]*)$`)

// Binary prefixes: 1 KB = 1024 bytes.
var unitMultipliers = map[string]int64{
	"":   1,
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
}

// ParseSize turns "16MB", "512 kb" or "2048" into bytes.
func ParseSize(sizeStr string) (int64, error) {
	raw := strings.TrimSpace(strings.ToUpper(sizeStr))
	if raw == "" {
		return 0, fmt.Errorf("empty size")
	}

	matches := sizeRegex.FindStringSubmatch(raw)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid size format %q", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid numeric value in %q", sizeStr)
	}

	multiplier, ok := unitMultipliers[matches[2]]
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q in %q", matches[2], sizeStr)
	}
	return value * multiplier, nil
}

// SizeToBytes is ParseSize with a fallback. Bad input is logged.
func SizeToBytes(sizeStr string, defaultValue int64) int64 {
	n, err := ParseSize(sizeStr)
	if err != nil {
		if strings.TrimSpace(sizeStr) != "" {
			logger.LogWarn("Utils: %v, using default %s", err, FormatBytes(defaultValue))
		}
		return defaultValue
	}
	return n
}
