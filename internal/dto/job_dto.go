package dto

type CreateJobRequest struct {
	Company  string `json:"company" validate:"required,min=1,max=255"`
	Position string `json:"position" validate:"required,min=1,max=255"`
	Location string `json:"location,omitempty" validate:"omitempty,max=255"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=APPLIED INTERVIEW OFFER REJECTED"`
	Notes    string `json:"notes,omitempty"`
}

type UpdateJobRequest struct {
	Company  *string `json:"company,omitempty" validate:"omitempty,min=1,max=255"`
	Position *string `json:"position,omitempty" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=APPLIED INTERVIEW OFFER REJECTED"`
	Notes    *string `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPLIED INTERVIEW OFFER REJECTED"`
}

type ListJobsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=APPLIED INTERVIEW OFFER REJECTED"`
	Search string `query:"search" validate:"omitempty,max=255"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type AutoFillRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// JobListResponse is the paginated list envelope.
type JobListResponse struct {
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Total      int64       `json:"total"`
	Results    int         `json:"results"`
	Data       interface{} `json:"data"`
}

// StatusCounts always carries all four pipeline stages.
type StatusCounts struct {
	Applied   int64 `json:"APPLIED"`
	Interview int64 `json:"INTERVIEW"`
	Offer     int64 `json:"OFFER"`
	Rejected  int64 `json:"REJECTED"`
}

type TrendPoint struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type JobStatsResponse struct {
	Total         int64        `json:"total"`
	Statuses      StatusCounts `json:"statuses"`
	InterviewRate string       `json:"interview_rate"`
	OfferRate     string       `json:"offer_rate"`
	Trend         []TrendPoint `json:"trend"`
}
