package mounttab

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSwapPriority is the priority assigned to a swap line whose
// trailing priority field is absent, mirroring the kernel's convention
// for swaps activated without an explicit priority.
const DefaultSwapPriority = -1

// SwapEntry describes one active swap device or file, as one line of
// /proc/swaps.
type SwapEntry struct {
	// Source is the device or file path the swap originates from.
	Source string
	// Kind is the kind of swap, such as "partition" or "file".
	Kind string
	// Size is the size of the swap area, in the unit the table uses.
	Size uint64
	// Used is how much of the swap area is in use, same unit as Size.
	Used uint64
	// Priority indicates the order of usage. May be negative.
	Priority int
}

// ParseSwapLine parses a single swap-table line into a SwapEntry. A line
// carries four or five whitespace-separated fields: source, kind, size,
// used, and an optional priority which defaults to DefaultSwapPriority.
func ParseSwapLine(line string) (SwapEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || len(fields) > 5 {
		return SwapEntry{}, fmt.Errorf("%w: got %d, want 4 or 5", ErrFieldCount, len(fields))
	}

	source, err := UnescapeField(fields[0])
	if err != nil {
		return SwapEntry{}, fmt.Errorf("source: %w", err)
	}
	kind, err := UnescapeField(fields[1])
	if err != nil {
		return SwapEntry{}, fmt.Errorf("kind: %w", err)
	}

	size, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return SwapEntry{}, fmt.Errorf("%w: size %q", ErrInvalidNumber, fields[2])
	}
	used, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return SwapEntry{}, fmt.Errorf("%w: used %q", ErrInvalidNumber, fields[3])
	}

	priority := DefaultSwapPriority
	if len(fields) > 4 {
		priority, err = strconv.Atoi(fields[4])
		if err != nil {
			return SwapEntry{}, fmt.Errorf("%w: priority %q", ErrInvalidNumber, fields[4])
		}
	}

	return SwapEntry{
		Source:   source,
		Kind:     kind,
		Size:     size,
		Used:     used,
		Priority: priority,
	}, nil
}

// String formats the entry as a single swap-table line: five fields
// separated by single spaces, with whitespace and backslashes in fields
// octal-escaped.
func (e SwapEntry) String() string {
	return fmt.Sprintf("%s %s %d %d %d",
		EscapeField(e.Source),
		EscapeField(e.Kind),
		e.Size,
		e.Used,
		e.Priority,
	)
}
