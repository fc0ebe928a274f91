package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
	"github.com/jobtrail/jobtrail-backend/internal/identity"
	"github.com/jobtrail/jobtrail-backend/internal/mailer"
	"github.com/jobtrail/jobtrail-backend/internal/models"
	"gorm.io/gorm"
)

// ErrJobNotFound is returned both when an id does not exist and when it
// belongs to another user. The caller cannot tell the two apart.
var ErrJobNotFound = errors.New("job application not found")

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type JobService struct {
	db       *gorm.DB
	mailer   *mailer.Mailer
	analyses *AnalysisService
}

func NewJobService(db *gorm.DB, m *mailer.Mailer, analyses *AnalysisService) *JobService {
	return &JobService{db: db, mailer: m, analyses: analyses}
}

// List returns one page of the caller's applications, newest first.
func (s *JobService) List(userID uuid.UUID, q *dto.ListJobsQuery) ([]models.JobApplication, int64, error) {
	page, limit := clampPaging(q.Page, q.Limit)

	query := s.db.Model(&models.JobApplication{}).Scopes(identity.OwnedBy(userID))
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("company ILIKE ? OR position ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobApplication
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Create stores a new application for userID. The owner always comes
// from the authenticated token, never from the request body.
func (s *JobService) Create(userID uuid.UUID, req *dto.CreateJobRequest) (*models.JobApplication, error) {
	job := models.JobApplication{
		ID:       uuid.New(),
		UserID:   userID,
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
		Notes:    req.Notes,
		Status:   models.StatusApplied,
	}
	if req.Status != "" {
		job.Status = models.Status(req.Status)
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}
	return &job, nil
}

func (s *JobService) Get(userID, jobID uuid.UUID) (*models.JobApplication, error) {
	var job models.JobApplication
	err := s.db.Scopes(identity.OwnedBy(userID)).First(&job, "id = ?", jobID).Error
	if err != nil {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

// Update modifies the provided fields after re-verifying ownership.
func (s *JobService) Update(userID, jobID uuid.UUID, req *dto.UpdateJobRequest) (*models.JobApplication, error) {
	job, err := s.Get(userID, jobID)
	if err != nil {
		return nil, err
	}

	prevStatus := job.Status
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	if req.Status != nil {
		job.Status = models.Status(*req.Status)
	}

	if err := s.db.Save(job).Error; err != nil {
		return nil, fmt.Errorf("failed to update job application: %w", err)
	}

	if prevStatus != models.StatusInterview && job.Status == models.StatusInterview {
		go s.notifyInterview(userID, job)
	}
	return job, nil
}

// UpdateStatus changes only the pipeline stage.
func (s *JobService) UpdateStatus(userID, jobID uuid.UUID, status models.Status) (*models.JobApplication, error) {
	job, err := s.Get(userID, jobID)
	if err != nil {
		return nil, err
	}

	prevStatus := job.Status
	job.Status = status
	if err := s.db.Model(job).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	if prevStatus != models.StatusInterview && status == models.StatusInterview {
		go s.notifyInterview(userID, job)
	}
	return job, nil
}

// Delete soft-deletes the application. A missing or foreign id yields
// ErrJobNotFound; repeating the call is safe.
func (s *JobService) Delete(userID, jobID uuid.UUID) error {
	result := s.db.Scopes(identity.OwnedBy(userID)).
		Delete(&models.JobApplication{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Stats aggregates the caller's live applications by status plus a
// trailing 6-month monthly trend.
func (s *JobService) Stats(userID uuid.UUID) (*dto.JobStatsResponse, error) {
	type statusRow struct {
		Status models.Status
		Count  int64
	}
	var rows []statusRow
	err := s.db.Model(&models.JobApplication{}).
		Scopes(identity.OwnedBy(userID)).
		Select("status, COUNT(id) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.Status]int64, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r.Count
	}
	counts, total := statusCounts(byStatus)

	trend, err := s.monthlyTrend(userID)
	if err != nil {
		return nil, err
	}

	return &dto.JobStatsResponse{
		Total:         total,
		Statuses:      counts,
		InterviewRate: rateString(counts.Interview, total),
		OfferRate:     rateString(counts.Offer, total),
		Trend:         trend,
	}, nil
}

func (s *JobService) monthlyTrend(userID uuid.UUID) ([]dto.TrendPoint, error) {
	since := time.Now().AddDate(0, -6, 0)

	var points []dto.TrendPoint
	err := s.db.Model(&models.JobApplication{}).
		Scopes(identity.OwnedBy(userID)).
		Select("TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(id) AS count").
		Where("created_at >= ?", since).
		Group("month").
		Order("month ASC").
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []dto.TrendPoint{}
	}
	return points, nil
}

// statusCounts fills in zeroes for absent statuses so the response
// always carries all four keys.
func statusCounts(byStatus map[models.Status]int64) (dto.StatusCounts, int64) {
	counts := dto.StatusCounts{
		Applied:   byStatus[models.StatusApplied],
		Interview: byStatus[models.StatusInterview],
		Offer:     byStatus[models.StatusOffer],
		Rejected:  byStatus[models.StatusRejected],
	}
	total := counts.Applied + counts.Interview + counts.Offer + counts.Rejected
	return counts, total
}

func rateString(part, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

// notifyInterview emails the user their latest analysis when an
// application reaches the interview stage. Best effort: failures are
// logged and never affect the triggering request.
func (s *JobService) notifyInterview(userID uuid.UUID, job *models.JobApplication) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		slog.Warn("interview notification skipped, user lookup failed",
			"action", "interview_mail", "user_id", userID.String(), "error", err.Error())
		return
	}

	score := "Unknown"
	var tips []string
	if latest, err := s.analyses.Latest(userID); err == nil {
		score = fmt.Sprintf("%d", latest.MatchPercentage)
		tips = decodeStringList(latest.ImprovementTips)
	}

	if err := s.mailer.SendInterviewPrep(user.Email, user.Name, job.Company, score, tips); err != nil {
		slog.Warn("interview notification failed",
			"action", "interview_mail", "user_id", userID.String(), "error", err.Error())
	}
}

func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
