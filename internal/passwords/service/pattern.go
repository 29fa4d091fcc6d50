package service

import "unicode"

// hasMonotonicRun reports whether the case-folded chars contain three consecutive
// code points that step by exactly +1 or exactly -1 ("abc", "CBA", "123").
func hasMonotonicRun(chars []rune) bool {
	for i := 0; i+2 < len(chars); i++ {
		a := unicode.ToLower(chars[i])
		b := unicode.ToLower(chars[i+1])
		c := unicode.ToLower(chars[i+2])
		if (b == a+1 && c == b+1) || (b == a-1 && c == b-1) {
			return true
		}
	}
	return false
}

// hasAdjacentRepeat reports whether two neighbouring characters are equal.
func hasAdjacentRepeat(chars []rune) bool {
	for i := 1; i < len(chars); i++ {
		if chars[i] == chars[i-1] {
			return true
		}
	}
	return false
}
