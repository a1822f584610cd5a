package mounttab

import "strings"

// Option is a single token from a mount options field: either a bare flag
// such as "noatime" or a key=value pair such as "uid=1000".
type Option struct {
	Key   string
	Value string

	hasValue bool
}

// Flag returns a bare flag option.
func Flag(name string) Option {
	return Option{Key: name}
}

// KeyValue returns a key=value option.
func KeyValue(key, value string) Option {
	return Option{Key: key, Value: value, hasValue: true}
}

// IsFlag reports whether the option is a bare flag rather than a key=value
// pair. A pair with an empty value ("key=") is not a flag.
func (o Option) IsFlag() bool {
	return !o.hasValue
}

func (o Option) String() string {
	if o.hasValue {
		return o.Key + "=" + o.Value
	}
	return o.Key
}

// OptionList is the ordered set of options from a mount entry. Order is
// insertion order from the source text and is preserved on output, since
// some option consumers are order-sensitive.
type OptionList []Option

// ParseOptions splits a raw options field on commas. A token containing
// "=" splits into key and value at the first "="; other tokens are flags.
// An empty field or the single token "defaults" yields an empty list.
func ParseOptions(raw string) OptionList {
	if raw == "" || raw == "defaults" {
		return nil
	}

	tokens := strings.Split(raw, ",")
	opts := make(OptionList, 0, len(tokens))
	for _, tok := range tokens {
		if key, value, found := strings.Cut(tok, "="); found {
			opts = append(opts, KeyValue(key, value))
		} else {
			opts = append(opts, Flag(tok))
		}
	}
	return opts
}

// String joins the options with commas in their original order. An empty
// list serializes to the literal "defaults" so that round-tripped output
// is never ambiguous with a missing field.
func (l OptionList) String() string {
	if len(l) == 0 {
		return "defaults"
	}

	parts := make([]string, len(l))
	for i, o := range l {
		parts[i] = o.String()
	}
	return strings.Join(parts, ",")
}

// HasFlag reports whether the list contains the bare flag name.
func (l OptionList) HasFlag(name string) bool {
	for _, o := range l {
		if o.IsFlag() && o.Key == name {
			return true
		}
	}
	return false
}

// Value returns the value of the first key=value option with the given
// key, and whether such an option exists.
func (l OptionList) Value(key string) (string, bool) {
	for _, o := range l {
		if !o.IsFlag() && o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}

// Equal reports whether two option lists hold the same tokens in the same
// order.
func (l OptionList) Equal(other OptionList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
