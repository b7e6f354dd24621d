// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract builds the initial dataset from a Word document of
// faculty summaries.
package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentPart is the OOXML body part inside a .docx archive.
const documentPart = "word/document.xml"

// ReadParagraphs extracts the plain text of each paragraph from a
// .docx file. A .docx is a zip archive whose body lives in
// word/document.xml; each w:p element is a paragraph and its w:t
// elements hold the text runs. Empty paragraphs are dropped.
func ReadParagraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", path, err)
	}
	defer zr.Close()

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("document %s has no %s part", path, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	return parseParagraphs(rc)
}

// parseParagraphs streams the document XML and collects paragraph
// texts, concatenating the text runs within each paragraph.
func parseParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var cur strings.Builder
	inParagraph := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				cur.Reset()
			case "t":
				if inParagraph {
					var text string
					if err := dec.DecodeElement(&text, &t); err != nil {
						return nil, fmt.Errorf("parsing text run: %w", err)
					}
					cur.WriteString(text)
				}
			case "tab":
				if inParagraph {
					cur.WriteByte('\t')
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				if s := strings.TrimSpace(cur.String()); s != "" {
					paragraphs = append(paragraphs, s)
				}
				inParagraph = false
			}
		}
	}

	return paragraphs, nil
}
