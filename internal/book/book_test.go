package book

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAgenticDesignPatterns(t *testing.T) {
	doc := AgenticDesignPatterns()

	if got, want := len(doc.Chapters), 21; got != want {
		t.Fatalf("len(Chapters) = %d, want %d", got, want)
	}
	if got, want := len(doc.Parts), 4; got != want {
		t.Errorf("len(Parts) = %d, want %d", got, want)
	}
	if got, want := len(doc.Appendices), 7; got != want {
		t.Errorf("len(Appendices) = %d, want %d", got, want)
	}

	seen := make(map[int]int)
	for _, c := range doc.Chapters {
		seen[c.ID]++
		if c.Part < 1 || c.Part > 4 {
			t.Errorf("chapter %d: part %d not in 1..4", c.ID, c.Part)
		}
		if len(c.KeyConcepts) == 0 {
			t.Errorf("chapter %d: no key concepts", c.ID)
		}
	}
	var listed []int
	for _, p := range doc.Parts {
		listed = append(listed, p.Chapters...)
	}
	var want []int
	for id := 1; id <= 21; id++ {
		want = append(want, id)
		if seen[id] != 1 {
			t.Errorf("chapter %d appears %d times", id, seen[id])
		}
	}
	if diff := cmp.Diff(want, listed); diff != "" {
		t.Errorf("parts do not partition chapters 1..21: diff (-want +got):\n%s", diff)
	}

	if err := doc.Validate(); err != nil {
		t.Fatal(err)
	}

	wantFirst := Chapter{
		ID:          1,
		Title:       "Chapter 1: Prompt Chaining",
		PatternName: "Prompt Chaining",
		Part:        1,
		HasCode:     true,
		Status:      "final",
		Summary:     "Covers the Prompt Chaining pattern for building agentic systems.",
		KeyConcepts: []string{
			"Sequential composition of prompts",
			"Output → Input chaining",
			"Step-by-step decomposition",
			"Complex reasoning tasks",
		},
	}
	if diff := cmp.Diff(wantFirst, doc.Chapters[0]); diff != "" {
		t.Errorf("unexpected chapter 1: diff (-want +got):\n%s", diff)
	}
}

func TestAgenticDesignPatternsFresh(t *testing.T) {
	a := AgenticDesignPatterns()
	a.Chapters[0].KeyConcepts[0] = "modified"
	b := AgenticDesignPatterns()
	if got := b.Chapters[0].KeyConcepts[0]; got == "modified" {
		t.Errorf("modifying one Document leaked into the next")
	}
}

func TestValidate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		modify func(*Document)
		want   string
	}{
		{
			name: "duplicate chapter",
			modify: func(d *Document) {
				d.Chapters = append(d.Chapters, d.Chapters[0])
			},
			want: "chapter 1 listed twice",
		},
		{
			name: "overlapping parts",
			modify: func(d *Document) {
				d.Parts[1].Chapters = append(d.Parts[1].Chapters, 1)
			},
			want: "chapter 1 is in parts 1 and 2",
		},
		{
			name: "gap",
			modify: func(d *Document) {
				d.Parts[3].Chapters = d.Parts[3].Chapters[:6]
			},
			want: "chapters [21] are not in any part",
		},
		{
			name: "wrong back-reference",
			modify: func(d *Document) {
				d.Chapters[7].Part = 1
			},
			want: "chapter 8 names part 1 but is listed in part 2",
		},
		{
			name: "unknown chapter",
			modify: func(d *Document) {
				d.Parts[0].Chapters = append(d.Parts[0].Chapters, 22)
			},
			want: "part 1 references unknown chapter 22",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			doc := AgenticDesignPatterns()
			tt.modify(doc)
			err := doc.Validate()
			if err == nil {
				t.Fatalf("Validate succeeded, want error %q", tt.want)
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Validate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := AgenticDesignPatterns()
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "{\n  \"title\": \"Agentic Design Patterns\",\n  \"subtitle\": ") {
		t.Errorf("unexpected JSON prefix: %.80q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Errorf("JSON output ends in a newline")
	}
	for _, verbatim := range []string{"Output → Input chaining", "Factual Q&A", `"online_only": true`} {
		if !strings.Contains(out, verbatim) {
			t.Errorf("JSON output does not contain %q", verbatim)
		}
	}
	if got := strings.Count(out, "online_only"); got != 2 {
		t.Errorf("online_only appears %d times, want 2", got)
	}

	got, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("JSON round trip: diff (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := AgenticDesignPatterns()
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "title: Agentic Design Patterns\n") {
		t.Errorf("unexpected YAML prefix: %.80q", buf.String())
	}

	got, err := DecodeYAML(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("YAML round trip: diff (-want +got):\n%s", diff)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		var a, b bytes.Buffer
		if err := Encode(&a, AgenticDesignPatterns(), format); err != nil {
			t.Fatal(err)
		}
		if err := Encode(&b, AgenticDesignPatterns(), format); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Errorf("%s encoding differs between runs", format)
		}
	}
	if err := Encode(&bytes.Buffer{}, AgenticDesignPatterns(), "toml"); err == nil {
		t.Errorf("Encode(toml) succeeded unexpectedly")
	}
}

func TestEncodeMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeMarkdown(&buf, AgenticDesignPatterns()); err != nil {
		t.Fatal(err)
	}
	headings, err := Headings(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	want := []Heading{
		{Level: 1, Text: "Agentic Design Patterns"},
		{Level: 2, Text: "Part 1: Core Patterns"},
		{Level: 2, Text: "Part 2: Advanced Patterns"},
		{Level: 2, Text: "Part 3: Production Patterns"},
		{Level: 2, Text: "Part 4: Operational Patterns"},
		{Level: 2, Text: "Appendices"},
	}
	if diff := cmp.Diff(want, headings, cmpopts.IgnoreFields(Heading{}, "Line")); diff != "" {
		t.Errorf("unexpected headings: diff (-want +got):\n%s", diff)
	}
	for _, s := range []string{"Chapter 21: Exploration and Discovery", "Appendix G: Coding Agents"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("table of contents does not mention %q", s)
		}
	}
}

func TestHeadings(t *testing.T) {
	source := []byte(`# document

A paragraph,
which spans multiple lines.

## first heading

Second
------
`)
	got, err := Headings(source)
	if err != nil {
		t.Fatal(err)
	}
	want := []Heading{
		{Line: 1, Level: 1, Text: "document"},
		{Line: 6, Level: 2, Text: "first heading"},
		{Line: 8, Level: 2, Text: "Second"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected headings: diff (-want +got):\n%s", diff)
	}
}

func TestCheckTOC(t *testing.T) {
	doc := AgenticDesignPatterns()
	var buf bytes.Buffer
	if err := EncodeMarkdown(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if err := CheckTOC(buf.Bytes(), doc); err != nil {
		t.Fatal(err)
	}

	for _, tt := range []struct {
		name string
		md   string
		want string
	}{
		{
			name: "missing appendices",
			md:   "# Agentic Design Patterns\n\n## Part 1: Core Patterns\n\n## Part 2: Advanced Patterns\n\n## Part 3: Production Patterns\n\n## Part 4: Operational Patterns\n",
			want: "table of contents has 5 headings, want 6",
		},
		{
			name: "renamed part",
			md:   "# Agentic Design Patterns\n\n## Part 1: Core Patterns\n\n## Part 2: Advanced Patterns\n\n## Part 3: Production Patterns\n\n## Part 4: Operations\n\n## Appendices\n",
			want: `table of contents heading on line 9 is "Part 4: Operations", want "Part 4: Operational Patterns"`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTOC([]byte(tt.md), doc)
			if err == nil {
				t.Fatalf("CheckTOC succeeded, want error %q", tt.want)
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("CheckTOC = %q, want %q", got, tt.want)
			}
		})
	}
}
