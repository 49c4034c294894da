package agenda

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/agendacraft/internal/usecase/errors"
	"github.com/johnquangdev/agendacraft/pkg/validator"
)

// Parser turns the model reply into an agenda draft
type Parser struct {
	validator *validator.CustomValidator
}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{validator: validator.New()}
}

// ParseAgendaDraft decodes the JSON reply and checks that every required field is present.
// Any failure is reported as ErrGenerationFailed; there is no partial recovery.
func (p *Parser) ParseAgendaDraft(raw string) (*entities.AgendaDraft, error) {
	// The schema asks for bare JSON but fenced replies still show up
	raw = extractJSON(raw)

	var draft entities.AgendaDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("%w: parse JSON response: %v", usecaseErrors.ErrGenerationFailed, err)
	}

	if err := p.validator.Validate(&draft); err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrGenerationFailed, describeFieldErrors(err))
	}

	return &draft, nil
}

func describeFieldErrors(err error) string {
	fields := validator.FieldErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, field+" "+tag)
	}
	return "invalid response: " + strings.Join(parts, "; ")
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
