package mounttab

import (
	"bufio"
	"io"
	"strings"
)

// Mode selects how a scanner treats malformed lines.
type Mode int

const (
	// Permissive skips malformed lines and keeps scanning. Suitable for
	// the kernel-controlled tables, where a line this library cannot
	// parse should not break an otherwise-working consumer.
	Permissive Mode = iota
	// Strict halts at the first malformed line and reports it. Suitable
	// for fstab validation.
	Strict
)

// skippable reports whether a line carries no record: blank, or a comment
// after leading-whitespace trimming.
func skippable(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed == "" || trimmed[0] == '#'
}

// MountScanner lazily parses mount entries from a line-oriented reader,
// one pass, forward-only. Usage mirrors bufio.Scanner:
//
//	ms := mounttab.NewMountScanner(r, mounttab.Permissive)
//	for ms.Scan() {
//		entry := ms.Entry()
//		...
//	}
//	if err := ms.Err(); err != nil {
//		...
//	}
type MountScanner struct {
	s       *bufio.Scanner
	mode    Mode
	lineNum int
	entry   MountEntry
	err     error
}

// NewMountScanner returns a scanner over mount-table lines.
func NewMountScanner(r io.Reader, mode Mode) *MountScanner {
	return &MountScanner{s: bufio.NewScanner(r), mode: mode}
}

// Scan advances to the next mount entry, skipping blank and comment
// lines. It returns false when the input is exhausted or, in strict
// mode, when a line fails to parse; Err distinguishes the two.
func (ms *MountScanner) Scan() bool {
	if ms.err != nil {
		return false
	}
	for ms.s.Scan() {
		ms.lineNum++
		line := ms.s.Text()
		if skippable(line) {
			continue
		}
		entry, err := ParseMountLine(line)
		if err != nil {
			if ms.mode == Strict {
				ms.err = &ParseError{Line: line, LineNum: ms.lineNum, Err: err}
				return false
			}
			continue
		}
		ms.entry = entry
		return true
	}
	ms.err = ms.s.Err()
	return false
}

// Entry returns the entry produced by the last successful Scan.
func (ms *MountScanner) Entry() MountEntry {
	return ms.entry
}

// Err returns the first error encountered: a *ParseError in strict mode,
// or the reader's error. It is nil after a clean end of input.
func (ms *MountScanner) Err() error {
	return ms.err
}

// SwapScanner lazily parses swap entries from a line-oriented reader.
// The /proc/swaps column header ("Filename  Type  Size ...") is detected
// and skipped, so the scanner works on the file as the kernel emits it
// as well as on headerless line sets.
type SwapScanner struct {
	s       *bufio.Scanner
	mode    Mode
	lineNum int
	started bool
	entry   SwapEntry
	err     error
}

// NewSwapScanner returns a scanner over swap-table lines.
func NewSwapScanner(r io.Reader, mode Mode) *SwapScanner {
	return &SwapScanner{s: bufio.NewScanner(r), mode: mode}
}

// Scan advances to the next swap entry. Semantics match
// MountScanner.Scan.
func (ss *SwapScanner) Scan() bool {
	if ss.err != nil {
		return false
	}
	for ss.s.Scan() {
		ss.lineNum++
		line := ss.s.Text()
		if skippable(line) {
			continue
		}
		if !ss.started {
			ss.started = true
			if strings.HasPrefix(line, "Filename") {
				continue
			}
		}
		entry, err := ParseSwapLine(line)
		if err != nil {
			if ss.mode == Strict {
				ss.err = &ParseError{Line: line, LineNum: ss.lineNum, Err: err}
				return false
			}
			continue
		}
		ss.entry = entry
		return true
	}
	ss.err = ss.s.Err()
	return false
}

// Entry returns the entry produced by the last successful Scan.
func (ss *SwapScanner) Entry() SwapEntry {
	return ss.entry
}

// Err returns the first error encountered, nil after a clean end of
// input.
func (ss *SwapScanner) Err() error {
	return ss.err
}
