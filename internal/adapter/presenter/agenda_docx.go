package presenter

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
	agendaUsecase "github.com/johnquangdev/agendacraft/internal/usecase/agenda"
)

const (
	docxFont      = "Calibri"
	docxFontSize  = 11
	docxTitleSize = 18
	docxItemSize  = 13
	docxColor     = "000000"
)

// DocxContentType is the MIME type of rendered agendas
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocxRenderer renders agendas as Word documents
type DocxRenderer struct{}

// NewDocxRenderer creates a renderer writing scratch files under the OS temp dir
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// RenderDocx lays the agenda out like the text export: a title followed by
// numbered items with minutes, summary, action items and stakeholders
func (r *DocxRenderer) RenderDocx(a *entities.MeetingAgenda) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), "Meeting Agenda: "+a.Title, true, docxTitleSize)
	addRun(doc.AddParagraph(""), fmt.Sprintf("Total duration: %d minutes", a.TotalDuration), false, docxFontSize)

	minutes := agendaUsecase.Allocate(a.Items, a.TotalDuration)
	for i, it := range a.Items {
		doc.AddParagraph("")
		addRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s (%dm)", i+1, it.Title, minutes[i]), true, docxItemSize)
		addLabeled(doc.AddParagraph(""), "Summary: ", it.Summary)
		addLabeled(doc.AddParagraph(""), "Action Items: ", strings.Join(it.ActionItems, ", "))
		addLabeled(doc.AddParagraph(""), "Stakeholders: ", strings.Join(it.Stakeholders, ", "))
	}

	// godocx only saves to a path
	f, err := os.CreateTemp("", "agenda-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	_ = f.Close()
	defer os.Remove(path)

	if err := doc.SaveTo(path); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return out, nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color(docxColor)
	if bold {
		run.Bold(true)
	}
}

func addLabeled(p *docx.Paragraph, label, value string) {
	addRun(p, label, true, docxFontSize)
	if value != "" {
		addRun(p, value, false, docxFontSize)
	}
}
