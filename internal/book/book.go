// Package book describes the structure of a book: its parts, chapters and
// appendices.
package book

import (
	"fmt"
	"sort"
)

type Document struct {
	Title      string     `json:"title" yaml:"title"`
	Subtitle   string     `json:"subtitle" yaml:"subtitle"`
	Author     string     `json:"author" yaml:"author"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
	Parts      []Part     `json:"parts" yaml:"parts"`
	Chapters   []Chapter  `json:"chapters" yaml:"chapters"`
	Appendices []Appendix `json:"appendices" yaml:"appendices"`
	Metadata   Metadata   `json:"metadata" yaml:"metadata"`
}

// Part groups chapters. Chapters holds chapter IDs, not the chapters
// themselves.
type Part struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Chapters    []int  `json:"chapters" yaml:"chapters"`
	TotalPages  int    `json:"total_pages" yaml:"total_pages"`
	Description string `json:"description" yaml:"description"`
}

type Chapter struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	PatternName string   `json:"pattern_name" yaml:"pattern_name"`
	Part        int      `json:"part" yaml:"part"`
	HasCode     bool     `json:"has_code" yaml:"has_code"`
	Status      string   `json:"status" yaml:"status"`
	Summary     string   `json:"summary" yaml:"summary"`
	KeyConcepts []string `json:"key_concepts" yaml:"key_concepts"`
}

type Appendix struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Pages      int    `json:"pages" yaml:"pages"`
	OnlineOnly bool   `json:"online_only,omitempty" yaml:"online_only,omitempty"`
}

type Metadata struct {
	Donation string `json:"donation" yaml:"donation"`
	Source   string `json:"source" yaml:"source"`
}

// Validate checks that chapter IDs are unique and that the parts' chapter
// lists partition the chapters, agreeing with each chapter's Part.
func (d *Document) Validate() error {
	chapters := make(map[int]Chapter, len(d.Chapters))
	for _, c := range d.Chapters {
		if _, ok := chapters[c.ID]; ok {
			return fmt.Errorf("chapter %d listed twice", c.ID)
		}
		chapters[c.ID] = c
	}

	owner := make(map[int]int, len(d.Chapters))
	parts := make(map[int]bool, len(d.Parts))
	for _, p := range d.Parts {
		if parts[p.ID] {
			return fmt.Errorf("part %d listed twice", p.ID)
		}
		parts[p.ID] = true
		for _, id := range p.Chapters {
			c, ok := chapters[id]
			if !ok {
				return fmt.Errorf("part %d references unknown chapter %d", p.ID, id)
			}
			if prev, ok := owner[id]; ok {
				return fmt.Errorf("chapter %d is in parts %d and %d", id, prev, p.ID)
			}
			if c.Part != p.ID {
				return fmt.Errorf("chapter %d names part %d but is listed in part %d", id, c.Part, p.ID)
			}
			owner[id] = p.ID
		}
	}

	var orphans []int
	for id := range chapters {
		if _, ok := owner[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) > 0 {
		sort.Ints(orphans)
		return fmt.Errorf("chapters %v are not in any part", orphans)
	}
	return nil
}
