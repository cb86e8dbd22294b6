// Package pdftest builds small, well-formed PDF documents for tests.
// Object offsets and the xref table are computed while writing, so the
// output is readable by strict parsers.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// HelloWorld is the text rendered by HelloWorldPDF.
const HelloWorld = "Hello, World!"

// HelloWorldPDF returns a one-page PDF whose content stream shows "Hello, World!".
func HelloWorldPDF() []byte {
	return Build(HelloWorld)
}

// BlankPDF returns a one-page PDF that draws a line but shows no text.
func BlankPDF() []byte {
	return Build("")
}

// Truncated returns the first half of doc.
func Truncated(doc []byte) []byte {
	return append([]byte(nil), doc[:len(doc)/2]...)
}

// UnterminatedStringPDF returns HelloWorldPDF with the closing parenthesis of
// the shown string replaced by a high byte, so the string literal never ends.
// Offsets are unchanged.
func UnterminatedStringPDF() []byte {
	return bytes.Replace(HelloWorldPDF(), []byte("World!) Tj"), []byte("World!\xcb Tj"), 1)
}

// BrokenEndobjPDF returns HelloWorldPDF with the "endobj" that closes the font
// object misspelled as "endfbj". Offsets are unchanged.
func BrokenEndobjPDF() []byte {
	doc := HelloWorldPDF()
	start := bytes.Index(doc, []byte("3 0 obj\n"))
	end := start + bytes.Index(doc[start:], []byte("endobj"))
	doc[end+3] = 'f'
	return doc
}

// Build returns a PDF with one page per entry. A page with empty text gets a
// content stream made only of path operators.
func Build(pages ...string) []byte {
	if len(pages) == 0 {
		pages = []string{""}
	}

	var objects []string
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)

	for i, text := range pages {
		contentObj := 5 + 2*i
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentObj),
			stream(contentStream(text)),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes()
}

func contentStream(text string) string {
	if text == "" {
		return "0 0 m\n100 100 l\nS\n"
	}
	return fmt.Sprintf("BT\n/F1 24 Tf\n72 720 Td\n(%s) Tj\nET\n", escape(text))
}

func stream(content string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)
}

var escaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func escape(s string) string {
	return escaper.Replace(s)
}
