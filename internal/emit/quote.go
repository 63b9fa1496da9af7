package emit

import "strings"

// safeChars are characters that need no quoting in a POSIX shell word.
const safeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@%+=:,./-_"

// Quote returns a token that a POSIX shell parses back to exactly s.
// Strings made up entirely of safe characters pass through unquoted for
// readability; everything else is wrapped in single quotes, with embedded
// single quotes spliced out as '"'"'.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !strings.ContainsRune(safeChars, r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
