package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
)

// buildPDF writes a minimal PDF with one page per entry. Each string in a page
// is shown with its own Tj operator, in order.
func buildPDF(pages ...[]string) []byte {
	streams := make([][]string, len(pages))
	for i, fragments := range pages {
		var content strings.Builder
		content.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
		for _, fragment := range fragments {
			fmt.Fprintf(&content, "(%s) Tj\n", escapePDFString(fragment))
		}
		content.WriteString("ET")
		streams[i] = []string{content.String()}
	}
	return buildRawPDF(streams...)
}

// buildRawPDF writes a PDF whose pages carry the given content streams verbatim.
// A page with several streams gets a /Contents array; a page with none has no
// /Contents at all. /F1 uses WinAnsiEncoding and /F2 MacRomanEncoding.
func buildRawPDF(pages ...[]string) []byte {
	var buf bytes.Buffer
	var offsets []int

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	// Objects 1-4 are the catalog, page tree and fonts; each page follows with its streams.
	pageObjs := make([]int, len(pages))
	next := 5
	kids := make([]string, len(pages))
	for i, streams := range pages {
		pageObjs[i] = next
		kids[i] = fmt.Sprintf("%d 0 R", next)
		next += 1 + len(streams)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Times-Roman /Encoding /MacRomanEncoding >>")

	for i, streams := range pages {
		refs := make([]string, len(streams))
		for j := range streams {
			refs[j] = fmt.Sprintf("%d 0 R", pageObjs[i]+1+j)
		}

		var contents string
		switch len(refs) {
		case 0:
		case 1:
			contents = " /Contents " + refs[0]
		default:
			contents = " /Contents [" + strings.Join(refs, " ") + "]"
		}

		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >>%s >>",
			contents,
		))
		for _, stream := range streams {
			writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		}
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOffset)

	return buf.Bytes()
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// buildDocx writes a minimal DOCX archive with one paragraph per entry.
func buildDocx(paragraphs ...string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	files := map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() +
			`</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// fakeLLM records prompts and returns a canned completion or error.
type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	wait     bool
	prompts  []string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
