package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"codedocs/internal/atomicfile"
	"codedocs/internal/book"
)

const (
	defaultInput  = "/home/nexora/codedocs/agentic/Agentic_Design_Patterns.txt"
	defaultOutput = "/home/nexora/codedocs/agentic/Agentic_Design_Patterns.json"
)

// pdfmeta1 writes the Agentic Design Patterns structure to outputPath in the
// given format, and a Markdown table of contents to tocPath unless it is
// empty. The text extracted from the PDF at inputPath is only checked for
// readability: the structure is curated by hand. Nothing is written unless
// every output rendered successfully; outputPath is written last.
func pdfmeta1(inputPath, outputPath, format, tocPath string) (*book.Document, error) {
	if inputPath != "" {
		if _, err := os.ReadFile(inputPath); err != nil {
			return nil, err
		}
	}

	doc := book.AgenticDesignPatterns()
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("BUG: %v", err)
	}

	var out bytes.Buffer
	if err := book.Encode(&out, doc, format); err != nil {
		return nil, err
	}

	if tocPath != "" {
		var toc bytes.Buffer
		if err := book.EncodeMarkdown(&toc, doc); err != nil {
			return nil, err
		}
		if err := book.CheckTOC(toc.Bytes(), doc); err != nil {
			return nil, fmt.Errorf("BUG: %v", err)
		}
		if err := atomicfile.WriteFile(tocPath, toc.Bytes(), 0644); err != nil {
			return nil, err
		}
		log.Printf("table of contents written to %s", tocPath)
	}

	if err := atomicfile.WriteFile(outputPath, out.Bytes(), 0644); err != nil {
		return nil, err
	}
	return doc, nil
}

func summarize(w io.Writer, doc *book.Document, outputPath string) {
	fmt.Fprintf(w, "✓ Parsed %d chapters\n", len(doc.Chapters))
	fmt.Fprintf(w, "✓ Extracted %d parts\n", len(doc.Parts))
	fmt.Fprintf(w, "✓ Listed %d appendices\n", len(doc.Appendices))
	fmt.Fprintf(w, "✓ Saved to: %s\n", outputPath)
	fmt.Fprintf(w, "\nTotal: %d pages\n", doc.TotalPages)
}

func pdfmeta() error {
	var (
		input = flag.String("input",
			defaultInput,
			"text extracted from the PDF (empty to skip)")

		output = flag.String("output",
			defaultOutput,
			"path to write the document structure to")

		format = flag.String("format",
			"json",
			"output format: json or yaml")

		toc = flag.String("toc",
			"",
			"if non-empty, path to write a Markdown table of contents to")
	)
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("syntax: %s [-input=<txt>] [-output=<file>] [-format=json|yaml] [-toc=<md>]", filepath.Base(os.Args[0]))
	}

	doc, err := pdfmeta1(*input, *output, *format, *toc)
	if err != nil {
		return err
	}
	summarize(os.Stdout, doc, *output)
	return nil
}

func main() {
	if err := pdfmeta(); err != nil {
		log.Fatal(err)
	}
}
