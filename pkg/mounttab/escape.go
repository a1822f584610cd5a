package mounttab

import (
	"fmt"
	"strings"
)

// fieldEscaper escapes the characters that would otherwise break a
// whitespace-delimited field, using the octal notation getmntent(3)
// expects:
//
//	space     => \040
//	tab       => \011
//	newline   => \012
//	backslash => \134
var fieldEscaper = strings.NewReplacer(
	" ", `\040`, "\t", `\011`, "\n", `\012`, `\`, `\134`)

// EscapeField encodes a single mount-table field. Space, tab, newline and
// backslash are replaced with their 3-digit octal escapes; everything else
// passes through unchanged.
func EscapeField(s string) string {
	return fieldEscaper.Replace(s)
}

// UnescapeField decodes a single mount-table field, reversing EscapeField.
// Every backslash must introduce exactly three octal digits; a truncated
// sequence or a non-octal digit is an error wrapping ErrEncoding.
func UnescapeField(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+3 >= len(raw) {
			return "", fmt.Errorf("%w: truncated octal escape in %q", ErrEncoding, raw)
		}
		var code int
		for _, d := range []byte{raw[i+1], raw[i+2], raw[i+3]} {
			if d < '0' || d > '7' {
				return "", fmt.Errorf("%w: invalid octal digit %q in %q", ErrEncoding, d, raw)
			}
			code = code*8 + int(d-'0')
		}
		b.WriteByte(byte(code))
		i += 3
	}

	return b.String(), nil
}
