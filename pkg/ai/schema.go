package ai

import (
	"fmt"

	"google.golang.org/genai"
)

const agendaPrompt = `Analyze the following document and create a structured meeting agenda.
Extract key topics, provide a concise summary for each, identify action items and stakeholders,
and suggest a percentage of the total meeting time for each topic (total must sum to 100).

Document Content:
%s`

// AgendaPrompt interpolates the document text into the generation instruction
func AgendaPrompt(documentText string) string {
	return fmt.Sprintf(agendaPrompt, documentText)
}

// Required fields of the agenda reply
var (
	AgendaRequiredFields = []string{"title", "items"}
	ItemRequiredFields   = []string{"title", "summary", "actionItems", "stakeholders", "suggestedPercentage"}
)

// AgendaSchema is the response schema enforced by the model provider
func AgendaSchema() *genai.Schema {
	stringList := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":        {Type: genai.TypeString},
			"summary":      {Type: genai.TypeString},
			"actionItems":  stringList,
			"stakeholders": stringList,
			"suggestedPercentage": {
				Type:        genai.TypeNumber,
				Description: "Percentage of total time (0-100)",
			},
		},
		PropertyOrdering: ItemRequiredFields,
		Required:         ItemRequiredFields,
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "A catchy title for the meeting",
			},
			"items": {
				Type:  genai.TypeArray,
				Items: item,
			},
		},
		PropertyOrdering: AgendaRequiredFields,
		Required:         AgendaRequiredFields,
	}
}
