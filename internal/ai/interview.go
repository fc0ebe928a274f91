package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// InterviewQuestion pairs a likely question with a preparation hint.
type InterviewQuestion struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

type InterviewPrep struct {
	Questions []InterviewQuestion `json:"questions"`
}

const interviewPrompt = `Generate interview preparation questions for a candidate interviewing
for the position "%s" at "%s".

Return JSON:
{
  "questions": [
    {"question": "string", "hint": "one-sentence hint for a strong answer"}
  ]
}
Provide exactly 5 questions mixing behavioral and role-specific topics.
Important: No markdown, no prose, strictly JSON.`

func fallbackInterviewPrep() *InterviewPrep {
	return &InterviewPrep{Questions: []InterviewQuestion{
		{Question: "Tell me about yourself and why you applied for this role.", Hint: "Keep it under two minutes and end on why this company specifically."},
		{Question: "Describe a challenging project you worked on recently.", Hint: "Use the STAR structure: situation, task, action, result."},
		{Question: "What do you know about our company and product?", Hint: "Reference something concrete from their site or recent news."},
		{Question: "Where do you see yourself in the next few years?", Hint: "Tie your growth to the responsibilities of this position."},
		{Question: "Do you have any questions for us?", Hint: "Always prepare at least two questions about the team and roadmap."},
	}}
}

// InterviewPrep generates likely questions for a company/position pair.
// A generation failure is not worth blocking the user over, so it
// degrades to a fixed generic set instead of returning an error.
func (c *Client) InterviewPrep(ctx context.Context, company, position string) *InterviewPrep {
	reply, err := c.Generate(ctx, fmt.Sprintf(interviewPrompt, position, company))
	if err != nil {
		slog.Warn("interview prep generation failed", "action", "ai_interview", "error", err.Error())
		return fallbackInterviewPrep()
	}

	var prep InterviewPrep
	if err := json.Unmarshal([]byte(StripFences(reply)), &prep); err != nil || len(prep.Questions) == 0 {
		slog.Warn("interview prep reply was not valid JSON", "action", "ai_interview")
		return fallbackInterviewPrep()
	}
	return &prep
}
