package history

import "strings"

// SplitPatterns splits a space-separated pattern string into individual
// tokens, honoring double-quoted multi-word tokens (and a quoted negative
// token, `-"..."`). Each returned token is lower-cased. Mirrors
// crossline_split_patterns.
func SplitPatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}
	var tokens []string
	s := patterns
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	for len(s) > 0 {
		negated := false
		quoted := strings.HasPrefix(s, "\"")
		if !quoted && strings.HasPrefix(s, "-\"") {
			quoted = true
			negated = true
			s = s[1:] // drop the '-'; re-add it below once the quote is stripped
		}
		if quoted {
			s = s[1:] // drop opening quote
			end := strings.IndexByte(s, '"')
			var tok string
			if end == -1 {
				tok = s
				s = ""
			} else {
				tok = s[:end]
				s = s[end+1:]
				for len(s) > 0 && s[0] == ' ' {
					s = s[1:]
				}
			}
			if negated {
				tok = "-" + tok
			}
			tokens = append(tokens, strings.ToLower(tok))
			continue
		}

		end := strings.IndexByte(s, ' ')
		var tok string
		if end == -1 {
			tok = s
			s = ""
		} else {
			tok = s[:end]
			s = s[end+1:]
			for len(s) > 0 && s[0] == ' ' {
				s = s[1:]
			}
		}
		tokens = append(tokens, strings.ToLower(tok))
	}
	return tokens
}

// MatchPatterns reports whether str satisfies every pattern in patList:
// a plain token must occur as a case-insensitive substring, while a
// token prefixed with '-' must NOT occur. Mirrors
// crossline_match_patterns.
func MatchPatterns(str string, patList []string) bool {
	buf := strings.ToLower(str)
	for _, pat := range patList {
		if strings.HasPrefix(pat, "-") {
			if strings.Contains(buf, pat[1:]) {
				return false
			}
			continue
		}
		if !strings.Contains(buf, pat) {
			return false
		}
	}
	return true
}
