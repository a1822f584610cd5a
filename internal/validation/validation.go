package validation

import (
	"fmt"
	"path/filepath"

	"github.com/ostools/mounttab/pkg/mounttab"
)

// MaxPassNumber is the highest fsck pass number in common use; anything
// higher almost always indicates a swapped field.
const MaxPassNumber = 2

// ValidateEntry validates a mount entry before it is written into an
// fstab document:
// - source and filesystem type must be non-empty
// - target must be an absolute path, or the literal "none" (swap lines)
// - dump must be non-negative, pass between 0 and 2
func ValidateEntry(entry mounttab.MountEntry) error {
	if entry.Source == "" {
		return fmt.Errorf("source must not be empty")
	}

	if entry.FSType == "" {
		return fmt.Errorf("filesystem type must not be empty")
	}

	if entry.Target != "none" && !filepath.IsAbs(entry.Target) {
		return fmt.Errorf("target must be an absolute path, got %q", entry.Target)
	}

	if entry.Dump < 0 {
		return fmt.Errorf("dump must not be negative, got %d", entry.Dump)
	}

	if entry.Pass < 0 || entry.Pass > MaxPassNumber {
		return fmt.Errorf("pass must be between 0 and %d, got %d", MaxPassNumber, entry.Pass)
	}

	return nil
}
