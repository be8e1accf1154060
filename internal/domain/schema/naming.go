package schema

import "strings"

// MaxColumnNameLength bounds sanitized identifiers.
const MaxColumnNameLength = 64

// SanitizeColumnName turns an arbitrary field name into a lowercase
// [a-z0-9_] identifier with no leading, trailing or doubled underscores,
// at most MaxColumnNameLength bytes long. It is idempotent.
func SanitizeColumnName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	lastUnderscore := false
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	out := strings.Trim(b.String(), "_")
	if len(out) > MaxColumnNameLength {
		out = strings.TrimRight(out[:MaxColumnNameLength], "_")
	}
	return out
}
