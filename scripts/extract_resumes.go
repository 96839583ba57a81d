package main

import (
	"log"
	"os"
	"strings"

	"alfredoptarigan/career-advisor/internal/models"
	"alfredoptarigan/career-advisor/internal/services"
)

// Extracts the text of every resume given on the command line, the same way
// POST /api/resume-advice does, without calling the model.
//
//	go run ./scripts/extract_resumes.go ./samples/resume.pdf ./samples/resume.docx
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <resume> [resume...]", os.Args[0])
	}

	log.Println("🚀 Starting resume extraction...")

	extractor := services.NewDocumentExtractor(services.NewPDFParserService())

	successCount := 0
	failCount := 0

	for _, path := range os.Args[1:] {
		log.Printf("\n📄 Processing: %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ⚠️  Failed to read file, skipping: %v", err)
			failCount++
			continue
		}

		doc := &models.DocumentInput{Filename: path, Data: data}
		log.Printf("   Type: %s", services.DetectFormat(doc))

		content, err := extractor.ExtractResumeText(doc)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))
		log.Printf("   %s", strings.ReplaceAll(preview(content.Text, 300), "\n", "\n   "))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Extraction Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}

func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
