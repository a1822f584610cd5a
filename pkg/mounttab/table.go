package mounttab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// tableLine is one line of a table document: either verbatim text
// (comment, blank, or unparsed line) or a parsed mount entry.
type tableLine struct {
	text  string
	entry *MountEntry
}

// TableEntry is a parsed entry together with its line position in the
// document.
type TableEntry struct {
	Pos   int
	Entry MountEntry
}

// Table is a non-destructive document model for an fstab-like file. It
// retains every line of the original input in order; comments, blanks and
// (in permissive mode) unparsed lines are kept verbatim and re-emitted
// byte-for-byte, while entry lines can be replaced or appended. A Table
// owns its line sequence exclusively; concurrent use requires external
// synchronization.
type Table struct {
	lines []tableLine
}

// ParseTable reads a full document from r, classifying each line once.
// In strict mode the first malformed line fails the parse with a
// *ParseError; in permissive mode malformed lines are retained verbatim
// and preserved on output.
func ParseTable(r io.Reader, mode Mode) (*Table, error) {
	t := &Table{}
	s := bufio.NewScanner(r)
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := s.Text()
		if skippable(line) {
			t.lines = append(t.lines, tableLine{text: line})
			continue
		}
		entry, err := ParseMountLine(line)
		if err != nil {
			if mode == Strict {
				return nil, &ParseError{Line: line, LineNum: lineNum, Err: err}
			}
			t.lines = append(t.lines, tableLine{text: line})
			continue
		}
		t.lines = append(t.lines, tableLine{entry: &entry})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFstab reads the static filesystem table from /etc/fstab in strict
// mode.
func LoadFstab() (*Table, error) {
	return LoadFstabFile(FstabPath)
}

// LoadFstabFile reads any fstab-like file in strict mode.
func LoadFstabFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	t, err := ParseTable(file, Strict)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of lines in the document, verbatim and entry
// lines alike.
func (t *Table) Len() int {
	return len(t.lines)
}

// Entries enumerates the parsed entries in document order with their
// line positions.
func (t *Table) Entries() []TableEntry {
	var out []TableEntry
	for i, l := range t.lines {
		if l.entry != nil {
			out = append(out, TableEntry{Pos: i, Entry: *l.entry})
		}
	}
	return out
}

// Entry returns the entry at the given line position, if that position
// holds one.
func (t *Table) Entry(pos int) (MountEntry, bool) {
	if pos < 0 || pos >= len(t.lines) || t.lines[pos].entry == nil {
		return MountEntry{}, false
	}
	return *t.lines[pos].entry, true
}

// Find returns the position of the first entry matching pred.
func (t *Table) Find(pred func(MountEntry) bool) (int, bool) {
	for i, l := range t.lines {
		if l.entry != nil && pred(*l.entry) {
			return i, true
		}
	}
	return 0, false
}

// FindTarget returns the position of the first entry mounted at target.
func (t *Table) FindTarget(target string) (int, bool) {
	return t.Find(func(e MountEntry) bool { return e.Target == target })
}

// Replace overwrites the entry at the given line position, keeping the
// line's place in the document. Replacing a verbatim line is an error.
func (t *Table) Replace(pos int, entry MountEntry) error {
	if pos < 0 || pos >= len(t.lines) {
		return fmt.Errorf("position %d out of range [0, %d)", pos, len(t.lines))
	}
	if t.lines[pos].entry == nil {
		return fmt.Errorf("line %d is not a mount entry", pos)
	}
	t.lines[pos] = tableLine{entry: &entry}
	return nil
}

// Append adds a new entry line at the end of the document.
func (t *Table) Append(entry MountEntry) {
	t.lines = append(t.lines, tableLine{entry: &entry})
}

// Render reconstructs the document text. Verbatim lines are emitted
// exactly as stored; entry lines are formatted from their current field
// values. Every line, including the last, is terminated with a newline.
func (t *Table) Render() string {
	var b strings.Builder
	for _, l := range t.lines {
		if l.entry != nil {
			b.WriteString(l.entry.String())
		} else {
			b.WriteString(l.text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the rendered document to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}
