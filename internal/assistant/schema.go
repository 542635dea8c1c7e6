package assistant

import "github.com/saketh8887/medconnect/internal/llm"

func stringArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// FeedbackSchema is the structured reply for the performance view.
var FeedbackSchema = &llm.Schema{
	Name:        "study-feedback",
	Description: "Personalised study feedback for a medical student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weakSpots":     stringArray("2-4 areas where the student is struggling (5-12 words each)"),
			"masteredAreas": stringArray("1-3 areas the student has clearly mastered"),
			"actionPlan":    stringArray("3-5 concrete next steps, most important first"),
			"focusTopics":   stringArray("2-4 topic names to study this week"),
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One or two warm, specific sentences of encouragement",
			},
		},
		"required":             []any{"weakSpots", "masteredAreas", "actionPlan", "focusTopics", "encouragement"},
		"additionalProperties": false,
	},
}
