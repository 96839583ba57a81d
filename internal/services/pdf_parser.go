package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (*DocumentContent, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the text of every page in page order. Each page is the
// space-joined list of its text fragments in content stream order followed by
// a newline, so the result always holds PageCount newlines.
func (p *pdfParserService) ExtractText(data []byte) (content *DocumentContent, err error) {
	// The pdf package panics on malformed objects.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &DocumentParseError{Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentParseError{Err: fmt.Errorf("failed to open PDF: %w", err)}
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if !page.V.IsNull() {
			textBuilder.WriteString(strings.Join(pageFragments(page), " "))
		}
		textBuilder.WriteString("\n")
	}

	return &DocumentContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}

// pageFragments walks the page content streams and collects every shown string.
// A TJ array counts as a single fragment.
func pageFragments(page pdf.Page) []string {
	encoders := make(map[string]pdf.TextEncoding)
	for _, name := range page.Fonts() {
		encoders[name] = page.Font(name).Encoder()
	}

	var enc pdf.TextEncoding
	decode := func(raw string) string {
		if enc == nil {
			return raw
		}
		return enc.Decode(raw)
	}

	fragments := []string{}
	walk := func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		case "Tf":
			if n == 2 {
				enc = encoders[args[0].Name()]
			}
		case "Tj", "'":
			if n >= 1 {
				fragments = append(fragments, decode(args[n-1].RawString()))
			}
		case "\"":
			if n == 3 {
				fragments = append(fragments, decode(args[2].RawString()))
			}
		case "TJ":
			if n != 1 {
				return
			}
			var sb strings.Builder
			for i := 0; i < args[0].Len(); i++ {
				if x := args[0].Index(i); x.Kind() == pdf.String {
					sb.WriteString(decode(x.RawString()))
				}
			}
			fragments = append(fragments, sb.String())
		}
	}

	contents := page.V.Key("Contents")
	switch contents.Kind() {
	case pdf.Stream:
		pdf.Interpret(contents, walk)
	case pdf.Array:
		for i := 0; i < contents.Len(); i++ {
			if strm := contents.Index(i); strm.Kind() == pdf.Stream {
				pdf.Interpret(strm, walk)
			}
		}
	}

	return fragments
}
