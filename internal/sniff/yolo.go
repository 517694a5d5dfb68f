package sniff

import (
	"strings"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// YOLO detects line-based normalized bounding boxes: any line of exactly
// five whitespace-separated non-negative decimal tokens qualifies the whole
// file. No range or class-id validation is performed; routing only needs a
// structural signal.
type YOLO struct{}

func (YOLO) Name() string { return "yolo" }

func (YOLO) Format() types.Format { return types.FormatYOLO }

func (YOLO) Match(content []byte) bool {
	for line := range strings.Lines(string(content)) {
		parts := strings.Fields(line)
		if len(parts) != 5 {
			continue
		}
		ok := true
		for _, p := range parts {
			if !isUnsignedDecimal(p) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// isUnsignedDecimal reports whether s is digits with at most one decimal
// point and at least one digit. No signs, no exponents.
func isUnsignedDecimal(s string) bool {
	digits := 0
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
