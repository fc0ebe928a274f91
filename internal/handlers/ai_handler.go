package handlers

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrail/jobtrail-backend/internal/ai"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
	"github.com/jobtrail/jobtrail-backend/internal/identity"
	"github.com/jobtrail/jobtrail-backend/internal/pdfext"
	"github.com/jobtrail/jobtrail-backend/internal/services"
)

const maxResumeSize = 5 * 1024 * 1024 // 5 MB

type AIHandler struct {
	aiClient *ai.Client
	analyses *services.AnalysisService
}

func NewAIHandler(aiClient *ai.Client, analyses *services.AnalysisService) *AIHandler {
	return &AIHandler{aiClient: aiClient, analyses: analyses}
}

// Analyze scores raw job-description text against raw profile text.
// Scoring failures are surfaced, never papered over with a default.
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	if _, err := identity.UserID(c); err != nil {
		return unauthorized(c)
	}

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	result, err := h.aiClient.Score(c.Context(), req.JobDescription, req.UserProfile)
	if err != nil {
		slog.Error("compatibility scoring failed", "action", "ai_score", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "AI analysis failed",
		})
	}
	return c.JSON(result)
}

// AnalyzeResume scores an uploaded PDF resume against a job description
// and persists the result as an Analysis.
func (h *AIHandler) AnalyzeResume(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	jobDescription := c.FormValue("jobDescription")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Please provide a job description",
		})
	}
	jobTitle := c.FormValue("jobTitle")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Please upload a resume",
		})
	}
	if fileHeader.Size > maxResumeSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Resume must be 5 MB or smaller",
		})
	}
	if ct := fileHeader.Header.Get("Content-Type"); !strings.Contains(ct, "application/pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Only PDF files are allowed",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(c, "resume open failed", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		return internalError(c, "resume read failed", err)
	}

	resumeText, err := pdfext.ExtractText(data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not extract text from the uploaded PDF",
		})
	}

	result, err := h.aiClient.Score(c.Context(), jobDescription, resumeText)
	if err != nil {
		slog.Error("resume scoring failed", "action", "ai_score", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "AI analysis failed",
		})
	}

	record, err := h.analyses.Save(userID, jobTitle, result)
	if err != nil {
		return internalError(c, "analysis save failed", err)
	}

	return c.JSON(fiber.Map{
		"analysis":  result,
		"record_id": record.ID,
	})
}

// History returns the caller's past analyses, newest first.
func (h *AIHandler) History(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	records, err := h.analyses.History(userID)
	if err != nil {
		return internalError(c, "analysis history failed", err)
	}
	return c.JSON(fiber.Map{
		"results": len(records),
		"data":    records,
	})
}

// InterviewPrep generates likely questions for a company/position
// pair. Generation problems degrade to a generic set.
func (h *AIHandler) InterviewPrep(c *fiber.Ctx) error {
	if _, err := identity.UserID(c); err != nil {
		return unauthorized(c)
	}

	var req dto.InterviewPrepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	prep := h.aiClient.InterviewPrep(c.Context(), req.Company, req.Position)
	return c.JSON(prep)
}
