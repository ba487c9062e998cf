package parser

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseNumber parses a number literal as written in TypeScript source,
// including separators (`1_000`) and the 0x, 0o and 0b prefixes
func parseNumber(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			i, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				return 0, fmt.Errorf("invalid number literal %q", raw)
			}
			f, _ := new(big.Float).SetInt(i).Float64()
			return f, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number literal %q: %w", raw, err)
	}
	// literals too large for a float64 are Infinity
	return f, nil
}

// parseBigInt returns the canonical decimal digits of a bigint literal such as `0x1Fn`
func parseBigInt(raw string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
	i, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return "", fmt.Errorf("invalid bigint literal %q", raw)
	}
	return i.String(), nil
}

// unescape decodes a single escape sequence, backslash included
func unescape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}
	body := seq[1:]
	switch {
	case body == "0":
		return "\x00"
	case body == "'" || body == `"`:
		return body
	case body[0] == '\n' || body[0] == '\r' || strings.HasPrefix(body, "\u2028") || strings.HasPrefix(body, "\u2029"):
		// line continuation
		return ""
	case strings.HasPrefix(body, "u{") && strings.HasSuffix(body, "}"):
		code, err := strconv.ParseUint(body[2:len(body)-1], 16, 32)
		if err != nil || code > utf8.MaxRune {
			return seq
		}
		return string(rune(code))
	case body[0] == 'u' || body[0] == 'x' || strings.ContainsRune(`btnfrv\`, rune(body[0])):
		value, _, tail, err := strconv.UnquoteChar(seq, 0)
		if err != nil || tail != "" {
			return seq
		}
		return string(value)
	default:
		// unknown escapes stand for the escaped character itself
		return body
	}
}
