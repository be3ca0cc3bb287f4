package validation

import "strings"

// IsISBN reports whether the value is a well-formed ISBN-10 or ISBN-13.
// The check digit is verified, not just the shape.
func IsISBN(value string) bool {
	normalized := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, value)

	switch len(normalized) {
	case 10:
		return isISBN10(normalized)
	case 13:
		return isISBN13(normalized)
	}
	return false
}

// isISBN10 verifies the mod-11 check digit. The final position may be 'X',
// which stands for the value ten.
func isISBN10(s string) bool {
	sum := 0
	for i, r := range s {
		var digit int
		switch {
		case r >= '0' && r <= '9':
			digit = int(r - '0')
		case (r == 'X' || r == 'x') && i == 9:
			digit = 10
		default:
			return false
		}
		sum += (10 - i) * digit
	}
	return sum%11 == 0
}

// isISBN13 verifies the alternating-weight mod-10 check digit.
func isISBN13(s string) bool {
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i%2 == 1 {
			digit *= 3
		}
		sum += digit
	}
	return sum%10 == 0
}
