package errors

import (
	"regexp"
	"strconv"
	"strings"
)

// hexColorRegex matches CSS hex colors in #rgb or #rrggbb form.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS hex color value.
// Both the short #rgb and the long #rrggbb forms are accepted.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
	}
	return nil
}

// ParseLayerCounts parses a comma-separated neuron count list such as
// "4,6,6,2". Counts must be positive integers; range clamping to the
// editable [1, 50] window is the caller's concern, this only rejects
// values that cannot describe a layer at all.
func ParseLayerCounts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, New(ErrCodeInvalidLayers, "layer counts cannot be empty")
	}

	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, New(ErrCodeInvalidLayers, "invalid layer count: %q", strings.TrimSpace(p))
		}
		if n <= 0 {
			return nil, New(ErrCodeInvalidLayers, "layer count must be positive, got %d", n)
		}
		counts = append(counts, n)
	}

	if len(counts) < 2 {
		return nil, New(ErrCodeInvalidLayers, "need at least 2 layers, got %d", len(counts))
	}
	return counts, nil
}
