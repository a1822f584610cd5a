package mounttab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/dev/sda1", "/dev/sda1"},
		{"space", "/media/My Disk", `/media/My\040Disk`},
		{"tab", "a\tb", `a\011b`},
		{"newline", "a\nb", `a\012b`},
		{"backslash", `a\b`, `a\134b`},
		{"multiple", "a b\tc", `a\040b\011c`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeField(tt.in))
		})
	}
}

func TestUnescapeField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/dev/sda1", "/dev/sda1"},
		{"space", `/media/My\040Disk`, "/media/My Disk"},
		{"tab", `a\011b`, "a\tb"},
		{"newline", `a\012b`, "a\nb"},
		{"backslash", `a\134b`, `a\b`},
		{"arbitrary octal", `a\101b`, "aAb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnescapeField(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnescapeField_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"truncated at end", `foo\04`},
		{"lone backslash", `foo\`},
		{"non-octal digit", `foo\0a0`},
		{"digit eight", `foo\048`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnescapeField(tt.in)
			require.ErrorIs(t, err, ErrEncoding)
		})
	}
}

func TestEscapeInvolution(t *testing.T) {
	inputs := []string{
		"",
		"/dev/sda1",
		"/media/My Disk",
		"tabs\tand\nnewlines",
		`back\slash`,
		` \ mixed \040 literal `,
		"unicode µ snowman ☃",
	}

	for _, in := range inputs {
		got, err := UnescapeField(EscapeField(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, got)
	}
}
