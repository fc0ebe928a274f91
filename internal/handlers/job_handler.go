package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobtrail/jobtrail-backend/internal/ai"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
	"github.com/jobtrail/jobtrail-backend/internal/identity"
	"github.com/jobtrail/jobtrail-backend/internal/models"
	"github.com/jobtrail/jobtrail-backend/internal/scraper"
	"github.com/jobtrail/jobtrail-backend/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
	fetcher    *scraper.Fetcher
	aiClient   *ai.Client
}

func NewJobHandler(jobService *services.JobService, fetcher *scraper.Fetcher, aiClient *ai.Client) *JobHandler {
	return &JobHandler{jobService: jobService, fetcher: fetcher, aiClient: aiClient}
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var q dto.ListJobsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid query parameters",
		})
	}
	if err := dto.Validate(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	jobs, total, err := h.jobService.List(userID, &q)
	if err != nil {
		return internalError(c, "job list failed", err)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return c.JSON(dto.JobListResponse{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		Results:    len(jobs),
		Data:       jobs,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateJobRequest
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

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		return internalError(c, "job create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobNotFound(c)
	}

	job, err := h.jobService.Get(userID, jobID)
	if err != nil {
		return jobNotFound(c)
	}
	return c.JSON(job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobNotFound(c)
	}

	var req dto.UpdateJobRequest
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

	job, err := h.jobService.Update(userID, jobID, &req)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return jobNotFound(c)
		}
		return internalError(c, "job update failed", err)
	}
	return c.JSON(job)
}

func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobNotFound(c)
	}

	var req dto.UpdateStatusRequest
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

	job, err := h.jobService.UpdateStatus(userID, jobID, models.Status(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return jobNotFound(c)
		}
		return internalError(c, "status update failed", err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobNotFound(c)
	}

	if err := h.jobService.Delete(userID, jobID); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return jobNotFound(c)
		}
		return internalError(c, "job delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *JobHandler) Stats(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.jobService.Stats(userID)
	if err != nil {
		return internalError(c, "stats failed", err)
	}
	return c.JSON(stats)
}

// AutoFill fetches a job posting URL, extracts structured fields with
// the AI adapter, and records the result as a new application. The
// extraction step cannot fail: a parse problem produces the editable
// placeholder record instead.
func (h *JobHandler) AutoFill(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AutoFillRequest
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

	text, err := h.fetcher.Fetch(c.Context(), req.URL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch data from the provided URL",
		})
	}

	extracted := h.aiClient.Extract(c.Context(), text)

	job, err := h.jobService.Create(userID, &dto.CreateJobRequest{
		Company:  extracted.Company,
		Position: extracted.Position,
		Location: extracted.Location,
		Notes:    extracted.Notes,
	})
	if err != nil {
		return internalError(c, "auto-fill create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func jobNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: services.ErrJobNotFound.Error(),
	})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	slog.Error(msg, "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
