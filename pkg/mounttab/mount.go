// Package mounttab parses and serializes the textual mount tables used on
// Unix systems: the live kernel mount table (/proc/mounts), the static
// filesystem table (/etc/fstab), and the active swap table (/proc/swaps).
// It also provides a non-destructive document model for editing fstab
// files while preserving comments and formatting.
package mounttab

import (
	"fmt"
	"strconv"
	"strings"
)

// MountEntry describes how and where a source is mounted, as one line of
// /proc/mounts or /etc/fstab.
type MountEntry struct {
	// Source is the mounted device or pseudo-device.
	Source string
	// Target is the mount point path.
	Target string
	// FSType is the filesystem type.
	FSType string
	// Options holds the mount options. An empty list means "defaults".
	Options OptionList
	// Dump defines whether the filesystem should be dumped.
	Dump int
	// Pass defines the fsck pass number, 0 to skip checking.
	Pass int
}

// ParseMountLine parses a single mount-table line into a MountEntry. A
// line carries four to six whitespace-separated fields: source, target,
// fstype, options, and optional dump and pass numbers which default to 0.
func ParseMountLine(line string) (MountEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || len(fields) > 6 {
		return MountEntry{}, fmt.Errorf("%w: got %d, want 4 to 6", ErrFieldCount, len(fields))
	}

	source, err := UnescapeField(fields[0])
	if err != nil {
		return MountEntry{}, fmt.Errorf("source: %w", err)
	}
	target, err := UnescapeField(fields[1])
	if err != nil {
		return MountEntry{}, fmt.Errorf("target: %w", err)
	}
	fstype, err := UnescapeField(fields[2])
	if err != nil {
		return MountEntry{}, fmt.Errorf("fstype: %w", err)
	}
	options, err := UnescapeField(fields[3])
	if err != nil {
		return MountEntry{}, fmt.Errorf("options: %w", err)
	}

	var dump, pass int
	if len(fields) > 4 {
		dump, err = strconv.Atoi(fields[4])
		if err != nil {
			return MountEntry{}, fmt.Errorf("%w: dump %q", ErrInvalidNumber, fields[4])
		}
	}
	if len(fields) > 5 {
		pass, err = strconv.Atoi(fields[5])
		if err != nil {
			return MountEntry{}, fmt.Errorf("%w: pass %q", ErrInvalidNumber, fields[5])
		}
	}

	return MountEntry{
		Source:  source,
		Target:  target,
		FSType:  fstype,
		Options: ParseOptions(options),
		Dump:    dump,
		Pass:    pass,
	}, nil
}

// String formats the entry as a single mount-table line: six fields
// separated by single spaces, with whitespace and backslashes in fields
// octal-escaped and an empty options list rendered as "defaults".
func (e MountEntry) String() string {
	return fmt.Sprintf("%s %s %s %s %d %d",
		EscapeField(e.Source),
		EscapeField(e.Target),
		EscapeField(e.FSType),
		EscapeField(e.Options.String()),
		e.Dump,
		e.Pass,
	)
}

// Equal reports structural field-by-field equality. Whitespace width and
// escape style of the source text are not significant.
func (e MountEntry) Equal(other MountEntry) bool {
	return e.Source == other.Source &&
		e.Target == other.Target &&
		e.FSType == other.FSType &&
		e.Options.Equal(other.Options) &&
		e.Dump == other.Dump &&
		e.Pass == other.Pass
}
