// Package extractor turns uploaded documents into the plain text sent to the model.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

var (
	// ErrUnsupportedFileType is returned for any extension outside SupportedExtensions
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrExtractionFailed wraps decoder failures for supported files
	ErrExtractionFailed = errors.New("extraction failed")
)

// FileType identifies the extraction strategy chosen for a file
type FileType string

const (
	FileTypeDocx     FileType = "docx"
	FileTypeMarkdown FileType = "markdown"
	FileTypeText     FileType = "text"
)

var strategies = map[string]FileType{
	"docx":     FileTypeDocx,
	"md":       FileTypeMarkdown,
	"markdown": FileTypeMarkdown,
	"txt":      FileTypeText,
}

const utf8BOM = "\ufeff"

// Extension returns the lower-cased text after the last dot, or "" when there is none
func Extension(fileName string) string {
	idx := strings.LastIndexByte(fileName, '.')
	if idx == -1 || idx == len(fileName)-1 {
		return ""
	}
	return strings.ToLower(fileName[idx+1:])
}

// SupportedExtensions lists accepted extensions with their leading dot
func SupportedExtensions() []string {
	return []string{".docx", ".md", ".markdown", ".txt"}
}

// Detect resolves the extraction strategy for fileName
func Detect(fileName string) (FileType, error) {
	ft, ok := strategies[Extension(fileName)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, fileName)
	}
	return ft, nil
}

// Extract returns the plain text of an uploaded file
func Extract(fileName string, data []byte) (string, error) {
	ft, err := Detect(fileName)
	if err != nil {
		return "", err
	}

	switch ft {
	case FileTypeDocx:
		text, err := extractDocx(data)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, fileName, err)
		}
		return text, nil
	default:
		return decodeText(data), nil
	}
}

// decodeText reads bytes as UTF-8 the way a browser File.text() does:
// a leading BOM is dropped and invalid sequences become U+FFFD
func decodeText(data []byte) string {
	s := strings.TrimPrefix(string(data), utf8BOM)
	return strings.ToValidUTF8(s, "\uFFFD")
}

// extractDocx emits every body paragraph followed by a blank line.
// Table cells are walked row by row so their paragraphs keep document order.
func extractDocx(data []byte) (text string, err error) {
	// the decoder panics on some malformed parts
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docx decoder panic: %v", r)
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			writeParagraph(&sb, it)
		case *docx.Table:
			writeTable(&sb, it)
		}
	}
	return sb.String(), nil
}

func writeParagraph(sb *strings.Builder, p *docx.Paragraph) {
	sb.WriteString(p.String())
	sb.WriteString("\n\n")
}

func writeTable(sb *strings.Builder, t *docx.Table) {
	for _, row := range t.TableRows {
		for _, cell := range row.TableCells {
			for _, p := range cell.Paragraphs {
				writeParagraph(sb, p)
			}
			for _, nested := range cell.Tables {
				writeTable(sb, nested)
			}
		}
	}
}
