package dto

type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=20"`
	UserProfile    string `json:"userProfile" validate:"required,min=20"`
}

type InterviewPrepRequest struct {
	Company  string `json:"company" validate:"required,min=1,max=255"`
	Position string `json:"position" validate:"required,min=1,max=255"`
}

type PublicProfileResponse struct {
	Name     string                  `json:"name"`
	Title    string                  `json:"title,omitempty"`
	Bio      string                  `json:"bio,omitempty"`
	Username string                  `json:"username"`
	Analyses []PublicAnalysisSummary `json:"analyses"`
}

type PublicAnalysisSummary struct {
	MatchPercentage int    `json:"match_percentage"`
	JobTitle        string `json:"job_title"`
	CreatedAt       string `json:"created_at"`
}
