package book

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Kunde21/markdownfmt/v2/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// NewGoldmark returns a goldmark instance which renders back to Markdown, so
// that generated documents come out in canonical formatting.
func NewGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithRenderer(markdown.NewRenderer()),
	)
}

// EncodeMarkdown writes a table of contents for doc: one section per part
// listing its chapters, followed by the appendices.
func EncodeMarkdown(w io.Writer, doc *Document) error {
	chapters := make(map[int]Chapter, len(doc.Chapters))
	for _, c := range doc.Chapters {
		chapters[c.ID] = c
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "*%s* by %s, %d pages.\n\n", doc.Subtitle, doc.Author, doc.TotalPages)
	for _, p := range doc.Parts {
		fmt.Fprintf(&b, "## %s\n\n", partHeading(p))
		fmt.Fprintf(&b, "%s (%d pages).\n\n", p.Description, p.TotalPages)
		for _, id := range p.Chapters {
			c := chapters[id]
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, strings.Join(c.KeyConcepts, "; "))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", appendicesHeading)
	for _, a := range doc.Appendices {
		online := ""
		if a.OnlineOnly {
			online = ", online only"
		}
		fmt.Fprintf(&b, "- Appendix %s: %s (%d pages%s)\n", a.ID, a.Title, a.Pages, online)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s. Source: %s\n", doc.Metadata.Donation, doc.Metadata.Source)

	return NewGoldmark().Convert([]byte(b.String()), w)
}

const appendicesHeading = "Appendices"

func partHeading(p Part) string {
	return fmt.Sprintf("Part %d: %s", p.ID, p.Name)
}

// CheckTOC verifies that md, as written by EncodeMarkdown for doc, has the
// title heading followed by one heading per part and one for the appendices.
func CheckTOC(md []byte, doc *Document) error {
	headings, err := Headings(md)
	if err != nil {
		return err
	}
	want := []string{doc.Title}
	for _, p := range doc.Parts {
		want = append(want, partHeading(p))
	}
	want = append(want, appendicesHeading)

	if len(headings) != len(want) {
		return fmt.Errorf("table of contents has %d headings, want %d", len(headings), len(want))
	}
	for i, h := range headings {
		if h.Text != want[i] {
			return fmt.Errorf("table of contents heading on line %d is %q, want %q", h.Line, h.Text, want[i])
		}
	}
	return nil
}

type Heading struct {
	Line  int // 1-based
	Level int
	Text  string
}

// Headings returns the ATX and setext headings of a Markdown document in
// order of appearance.
func Headings(source []byte) ([]Heading, error) {
	root := NewGoldmark().Parser().Parse(text.NewReader(source))

	var headings []Heading
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}
		segments := n.Lines()
		if segments.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		start := segments.At(0).Start
		if start > len(source) {
			return ast.WalkStop, fmt.Errorf("BUG: heading offset %d beyond source of %d bytes", start, len(source))
		}
		headings = append(headings, Heading{
			Line:  bytes.Count(source[:start], []byte("\n")) + 1,
			Level: n.(*ast.Heading).Level,
			Text:  string(n.Text(source)),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return headings, nil
}
