package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// NormalizeMarkdown converts CRLF to LF, strips C0 control characters other
// than tab, LF and CR, and trims surrounding whitespace as browsers define it
// (see [isTrimmable]). Clients must apply exactly this before fingerprinting,
// otherwise identical documents get different passwords.
func NormalizeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, text)
	return strings.TrimFunc(text, isTrimmable)
}

// isTrimmable reports whether String.prototype.trim removes r: the
// ECMAScript WhiteSpace and LineTerminator sets. Unlike [unicode.IsSpace] it
// includes U+FEFF and excludes U+0085.
func isTrimmable(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Fingerprint returns the lowercase hex SHA-256 of already normalised text.
func Fingerprint(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// IsFingerprint reports whether s looks like a [Fingerprint] result.
func IsFingerprint(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
