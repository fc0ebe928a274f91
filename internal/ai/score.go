package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

// CompatibilityResult scores a resume against a job description.
type CompatibilityResult struct {
	MatchPercentage int      `json:"matchPercentage"`
	MissingKeywords []string `json:"missingKeywords"`
	ImprovementTips []string `json:"improvementTips"`
	Summary         string   `json:"summary"`
}

const scoringPrompt = `Analyze this Job vs Resume.
Job: %s
Resume: %s

Return JSON:
{
  "matchPercentage": number,
  "missingKeywords": ["skill1", "skill2"],
  "improvementTips": ["tip1", "tip2", "tip3"],
  "summary": "2-sentence outlook"
}
Important: No markdown, no prose, strictly JSON.`

// scoreReply mirrors the provider's JSON. The percentage is decoded as
// float64 because models return fractional scores like 87.5 often
// enough that an int field would reject otherwise valid replies.
type scoreReply struct {
	MatchPercentage float64  `json:"matchPercentage"`
	MissingKeywords []string `json:"missingKeywords"`
	ImprovementTips []string `json:"improvementTips"`
	Summary         string   `json:"summary"`
}

// Score computes compatibility between a job description and resume
// text. Unlike Extract, every failure propagates: the user is blocking
// on this number, so a fabricated default would misinform them.
func (c *Client) Score(ctx context.Context, jobDescription, resumeText string) (*CompatibilityResult, error) {
	reply, err := c.Generate(ctx, fmt.Sprintf(scoringPrompt, jobDescription, resumeText))
	if err != nil {
		return nil, err
	}

	var raw scoreReply
	if err := json.Unmarshal([]byte(StripFences(reply)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse compatibility reply: %w", err)
	}

	result := CompatibilityResult{
		MatchPercentage: int(math.Round(raw.MatchPercentage)),
		MissingKeywords: raw.MissingKeywords,
		ImprovementTips: raw.ImprovementTips,
		Summary:         raw.Summary,
	}
	if result.MatchPercentage < 0 {
		result.MatchPercentage = 0
	}
	if result.MatchPercentage > 100 {
		result.MatchPercentage = 100
	}
	if result.MissingKeywords == nil {
		result.MissingKeywords = []string{}
	}
	if result.ImprovementTips == nil {
		result.ImprovementTips = []string{}
	}

	return &result, nil
}
