package toolbox

import (
	"regexp"
)

var integerTokenPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// IsIntegerToken check if a string is an optional sign followed by one or more decimal digits
func IsIntegerToken(s string) bool { return integerTokenPattern.MatchString(s) }

// ParseBoundedInt32 convert a signed decimal token to int32.
// Leading zeros are ignored and both extremes of the range are accepted, any value outside of
// the range result in `ErrInvalidFormat`.
func ParseBoundedInt32(token string) (int32, error) {
	value, err := parseBounded(token, int32Limits)
	if err != nil {
		return 0, err
	}
	return int32(value), nil
}

// ParseBoundedInt64 convert a signed decimal token to int64.
// Leading zeros are ignored and both extremes of the range are accepted, any value outside of
// the range result in `ErrInvalidFormat`.
func ParseBoundedInt64(token string) (int64, error) {
	return parseBounded(token, int64Limits)
}

// ParseInt32Token validate shape of the token and then parse it using `ParseBoundedInt32`
func ParseInt32Token(s string) (int32, error) {
	if !IsIntegerToken(s) {
		return 0, InvalidFormatError{Token: s, Bits: 32}
	}
	return ParseBoundedInt32(s)
}

// ParseInt64Token validate shape of the token and then parse it using `ParseBoundedInt64`
func ParseInt64Token(s string) (int64, error) {
	if !IsIntegerToken(s) {
		return 0, InvalidFormatError{Token: s, Bits: 64}
	}
	return ParseBoundedInt64(s)
}

func parseBounded(token string, limits digitLimits) (int64, error) {
	negative, digits, ok := splitIntegerToken(token)
	if !ok || !inDigitRange(digits, limits.table(negative)) {
		return 0, InvalidFormatError{Token: token, Bits: limits.bits}
	}

	// accumulate toward the sign so the magnitude of the minimum value never overflows
	var result int64
	for i := 0; i < len(digits); i++ {
		d := int64(digits[i] - '0')
		if negative {
			result = result*10 - d
		} else {
			result = result*10 + d
		}
	}
	return result, nil
}

// splitIntegerToken separate sign from the digits and remove leading zeros of the digits.
// An all zero digit sequence collapse to "0"
func splitIntegerToken(token string) (negative bool, digits string, ok bool) {
	if token == "" {
		return false, "", false
	}
	switch token[0] {
	case '-':
		negative = true
		digits = token[1:]
	case '+':
		digits = token[1:]
	default:
		digits = token
	}
	if digits == "" {
		return false, "", false
	}

	i := 0
	for i < len(digits) {
		c := digits[i]
		if c < '0' || c > '9' {
			return false, "", false
		}
		if c != '0' {
			break
		}
		i++
	}
	for j := i; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return false, "", false
		}
	}
	if i == len(digits) {
		return negative, "0", true
	}
	return negative, digits[i:], true
}

// inDigitRange compare a digit string without leading zeros with the magnitude table
func inDigitRange(digits string, limit []byte) bool {
	if len(digits) != len(limit) {
		return len(digits) < len(limit)
	}
	for i := 0; i < len(limit); i++ {
		d := digits[i] - '0'
		if d > limit[i] {
			return false
		}
		if d < limit[i] {
			return true
		}
	}
	return true
}
