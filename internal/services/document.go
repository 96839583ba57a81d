package services

import (
	"bytes"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/career-advisor/internal/models"
)

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatText = "text"

	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type DocumentContent struct {
	Text      string
	PageCount int
	Format    string
}

// DocumentExtractor turns an uploaded resume into plain text.
type DocumentExtractor interface {
	ExtractResumeText(doc *models.DocumentInput) (*DocumentContent, error)
}

type documentExtractor struct {
	pdfParser PDFParserService
}

func NewDocumentExtractor(pdfParser PDFParserService) DocumentExtractor {
	return &documentExtractor{pdfParser: pdfParser}
}

// ExtractResumeText implements DocumentExtractor.
func (d *documentExtractor) ExtractResumeText(doc *models.DocumentInput) (*DocumentContent, error) {
	switch format := DetectFormat(doc); format {
	case FormatText:
		return &DocumentContent{Text: string(doc.Data), PageCount: 1, Format: format}, nil

	case FormatDOCX:
		text, err := extractDocxText(doc.Data)
		if err != nil {
			return nil, &DocumentParseError{Err: err}
		}
		return &DocumentContent{Text: text, PageCount: 1, Format: format}, nil

	default:
		content, err := d.pdfParser.ExtractText(doc.Data)
		if err != nil {
			return nil, err
		}
		content.Format = FormatPDF
		return content, nil
	}
}

// DetectFormat picks the extractor from the leading bytes, then the declared
// content type, then the file extension. Unknown uploads are treated as PDF.
func DetectFormat(doc *models.DocumentInput) string {
	switch {
	case bytes.HasPrefix(doc.Data, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(doc.Data, []byte("PK\x03\x04")):
		return FormatDOCX
	}

	if mediaType, _, err := mime.ParseMediaType(doc.ContentType); err == nil {
		switch mediaType {
		case "application/pdf":
			return FormatPDF
		case mimeDOCX:
			return FormatDOCX
		case "text/plain":
			return FormatText
		}
	}

	switch strings.ToLower(filepath.Ext(doc.Filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".txt":
		return FormatText
	}

	return FormatPDF
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")

	return html.UnescapeString(content), nil
}
