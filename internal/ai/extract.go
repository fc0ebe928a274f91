package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// ExtractionResult is the structured record pulled out of a scraped job
// posting. It feeds directly into job-application creation.
type ExtractionResult struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// FallbackExtraction is returned whenever extraction fails for any
// reason. Auto-fill always produces a record the user can edit by hand.
func FallbackExtraction() ExtractionResult {
	return ExtractionResult{
		Company:  "Unknown",
		Position: "Unknown",
		Location: "Not Specified",
		Notes:    "Auto-fill failed to parse details.",
	}
}

const extractionPrompt = `Act as a data extraction expert. Extract job details from the provided text.
The text is scraped from a job board. Identify the company, position, and location.

Text: %s

Return ONLY a JSON object with these exact keys:
{
  "company": "string",
  "position": "string",
  "location": "string",
  "notes": "string (a very brief 1-sentence summary of the role)"
}
Important: No markdown, no prose, strictly JSON.`

// Extract turns raw page text into an ExtractionResult. It never
// returns an error: on any failure the caller gets the fixed fallback
// record and the cause is logged.
func (c *Client) Extract(ctx context.Context, rawText string) ExtractionResult {
	reply, err := c.Generate(ctx, fmt.Sprintf(extractionPrompt, rawText))
	if err != nil {
		slog.Warn("auto-fill extraction failed", "action", "ai_extract", "error", err.Error())
		return FallbackExtraction()
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(StripFences(reply)), &result); err != nil {
		slog.Warn("auto-fill reply was not valid JSON", "action", "ai_extract", "error", err.Error())
		return FallbackExtraction()
	}

	if result.Company == "" || result.Position == "" {
		return FallbackExtraction()
	}
	return result
}
