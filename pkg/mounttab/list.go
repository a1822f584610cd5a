package mounttab

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Well-known table paths used by the default loaders.
const (
	ProcMountsPath = "/proc/mounts"
	ProcSwapsPath  = "/proc/swaps"
	FstabPath      = "/etc/fstab"
)

// MountList is an ordered, restartable view over parsed mount entries.
type MountList []MountEntry

// ParseMounts materializes all mount entries from a line-oriented reader.
func ParseMounts(r io.Reader, mode Mode) (MountList, error) {
	var list MountList
	ms := NewMountScanner(r, mode)
	for ms.Scan() {
		list = append(list, ms.Entry())
	}
	if err := ms.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadMounts reads the live kernel mount table from /proc/mounts.
func LoadMounts() (MountList, error) {
	return LoadMountsFile(ProcMountsPath)
}

// LoadMountsFile reads any mount-tab-like file.
func LoadMountsFile(path string) (MountList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	list, err := ParseMounts(file, Permissive)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// BySource returns the first entry mounted from the given source, or nil.
func (l MountList) BySource(source string) *MountEntry {
	for i := range l {
		if l[i].Source == source {
			return &l[i]
		}
	}
	return nil
}

// ByTarget returns the first entry mounted at the given target, or nil.
func (l MountList) ByTarget(target string) *MountEntry {
	for i := range l {
		if l[i].Target == target {
			return &l[i]
		}
	}
	return nil
}

// SourceMountedAt reports whether source is mounted at target.
func (l MountList) SourceMountedAt(source, target string) bool {
	entry := l.BySource(source)
	return entry != nil && entry.Target == target
}

// SourcePrefix returns the entries whose source starts with prefix, in
// table order.
func (l MountList) SourcePrefix(prefix string) MountList {
	var out MountList
	for _, e := range l {
		if strings.HasPrefix(e.Source, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// TargetPrefix returns the entries whose target starts with prefix, in
// table order.
func (l MountList) TargetPrefix(prefix string) MountList {
	var out MountList
	for _, e := range l {
		if strings.HasPrefix(e.Target, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// SwapList is an ordered, restartable view over parsed swap entries.
type SwapList []SwapEntry

// ParseSwaps materializes all swap entries from a line-oriented reader.
func ParseSwaps(r io.Reader, mode Mode) (SwapList, error) {
	var list SwapList
	ss := NewSwapScanner(r, mode)
	for ss.Scan() {
		list = append(list, ss.Entry())
	}
	if err := ss.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadSwaps reads the active swap table from /proc/swaps.
func LoadSwaps() (SwapList, error) {
	return LoadSwapsFile(ProcSwapsPath)
}

// LoadSwapsFile reads any swap-tab-like file.
func LoadSwapsFile(path string) (SwapList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	list, err := ParseSwaps(file, Permissive)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// Swapped reports whether the given source is an active swap.
func (l SwapList) Swapped(source string) bool {
	for _, e := range l {
		if e.Source == source {
			return true
		}
	}
	return false
}
