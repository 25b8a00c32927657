// Package splice replaces a contiguous span of lines located by two literal
// anchors. It performs no I/O: callers hand in a line buffer and get a new
// one back.
package splice

import (
	"fmt"
	"strings"
)

// Window bounds the anchor search. The insertion anchor is looked for in line
// indexes Start through End (inclusive, 0-based). The end marker is looked for
// in the ScanLimit-1 lines following the insertion anchor.
type Window struct {
	Start     int
	End       int
	ScanLimit int
}

type Patch struct {
	Window Window

	// Anchor marks the insertion point.
	Anchor string

	// EndMarker is searched forward from the insertion point. The span ends
	// EndOffset lines before it.
	EndMarker string
	EndOffset int

	// Skip is the number of lines after the insertion point which are kept.
	Skip int

	// Block replaces the span. Each entry is one line including its newline.
	Block []string

	// Applied, if non-empty, is a substring only present once the patch has
	// been applied. Running into it before EndMarker fails the search.
	Applied string
}

// Result describes a successful splice. Lines [Start, End) of the input were
// replaced by Inserted lines.
type Result struct {
	Insert   int // line index of Anchor
	Marker   int // line index of EndMarker
	Start    int
	End      int
	Removed  int
	Inserted int
}

// Apply locates p's anchors in lines and returns a new buffer with the span
// between them replaced by p.Block. lines is not modified. The first match in
// iteration order wins for both anchors.
func Apply(lines []string, p Patch) ([]string, Result, error) {
	insert, err := findAnchor(lines, p)
	if err != nil {
		return nil, Result{}, err
	}
	marker, err := findEndMarker(lines, insert, p)
	if err != nil {
		return nil, Result{}, err
	}

	start := insert + p.Skip
	end := marker - p.EndOffset
	if end < start || start > len(lines) {
		return nil, Result{}, fmt.Errorf("span [%d, %d) of %d lines: %w", start, end, len(lines), ErrOutOfBounds)
	}

	out := make([]string, 0, len(lines)-(end-start)+len(p.Block))
	out = append(out, lines[:start]...)
	out = append(out, p.Block...)
	out = append(out, lines[end:]...)
	return out, Result{
		Insert:   insert,
		Marker:   marker,
		Start:    start,
		End:      end,
		Removed:  end - start,
		Inserted: len(p.Block),
	}, nil
}

func findAnchor(lines []string, p Patch) (int, error) {
	last := p.Window.End
	if last > len(lines)-1 {
		last = len(lines) - 1
	}
	first := p.Window.Start
	if first < 0 {
		first = 0
	}
	for i := first; i <= last; i++ {
		if strings.Contains(lines[i], p.Anchor) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("could not find insertion point %q in lines %d-%d: %w",
		p.Anchor, p.Window.Start, p.Window.End, ErrAnchorNotFound)
}

func findEndMarker(lines []string, insert int, p Patch) (int, error) {
	limit := insert + p.Window.ScanLimit
	for i := insert + 1; i < limit; i++ {
		if i >= len(lines) {
			return -1, fmt.Errorf("could not find end point %q: scan ran past line %d of %d: %w",
				p.EndMarker, i, len(lines), ErrOutOfBounds)
		}
		if p.Applied != "" && strings.Contains(lines[i], p.Applied) {
			return -1, fmt.Errorf("could not find end point %q: line %d was already rewritten: %w",
				p.EndMarker, i, ErrAnchorNotFound)
		}
		if strings.Contains(lines[i], p.EndMarker) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("could not find end point %q in lines %d-%d: %w",
		p.EndMarker, insert+1, limit-1, ErrAnchorNotFound)
}
