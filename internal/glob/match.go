package glob

import "strings"

// hasWildcard reports whether seg contains * or ?.
func hasWildcard(seg string) bool {
	return strings.ContainsAny(seg, "*?")
}

// matchWildcard matches name against a single-segment pattern.
//
// ? matches exactly one character and * any run of characters. The literal
// prefix is compared first; afterwards every * records a backtrack point and
// a mismatch resumes from the most recent one with the name shifted by one.
func matchWildcard(pattern, name string) bool {
	p := []rune(pattern)
	s := []rune(name)

	i, j := 0, 0
	for i < len(s) && j < len(p) && p[j] != '*' {
		if p[j] != s[i] && p[j] != '?' {
			return false
		}
		i++
		j++
	}

	// No * at all: lengths must agree.
	if j == len(p) {
		return len(s) == len(p)
	}

	starAt, resumeAt := 0, 0
	for i < len(s) {
		switch {
		case j < len(p) && p[j] == '*':
			j++
			if j >= len(p) {
				return true
			}
			starAt = j
			resumeAt = i + 1
		case j < len(p) && (p[j] == s[i] || p[j] == '?'):
			i++
			j++
		default:
			j = starAt
			i = resumeAt
			resumeAt++
		}
	}

	for j < len(p) && p[j] == '*' {
		j++
	}
	return j >= len(p)
}
