package validators

import (
	"regexp"
	"strings"
)

var (
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	otpPattern    = regexp.MustCompile(`^[0-9]{6}$`)
)

// NormalizeMobile strips formatting and reports whether what remains is a
// 10-digit mobile number.
func NormalizeMobile(raw string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	return digits, mobilePattern.MatchString(digits)
}

func IsOTPCode(code string) bool {
	return otpPattern.MatchString(code)
}
