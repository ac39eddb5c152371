package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsValidInput reports whether input may stay in an amount field while the user types.
// Blank input and a lone "." are accepted, as are unsigned 0x, 0o and 0b integers
// and the literal Infinity forms. NaN and other spellings of infinity are not.
func IsValidInput(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || input == "." {
		return true
	}
	switch trimmed {
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}
	if base, digits, ok := radixLiteral(trimmed); ok {
		_, err := strconv.ParseUint(digits, base, 64)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if errors.Is(err, strconv.ErrRange) {
		// overflow to Inf is still a number
		return true
	}
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func radixLiteral(s string) (int, string, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// DenominationToDecimalPlaces counts the zeros in a multiplier such as "100000000".
func DenominationToDecimalPlaces(multiplier string) string {
	return strconv.Itoa(strings.Count(multiplier, "0"))
}

// DecimalPlacesToDenomination builds the multiplier for a number of decimal places.
// It returns "1" at the very least.
func DecimalPlacesToDenomination(decimalPlaces string) string {
	n, err := strconv.Atoi(strings.TrimSpace(decimalPlaces))
	if err != nil || n < 0 {
		return "1"
	}
	return "1" + strings.Repeat("0", n)
}

// CutOffText shortens str to lng runes followed by an ellipsis.
func CutOffText(str string, lng int) string {
	if utf8.RuneCountInString(str) < lng {
		return str
	}
	return string([]rune(str)[:lng]) + "..."
}
