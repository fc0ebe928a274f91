package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobtrail/jobtrail-backend/internal/ai"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
	"github.com/jobtrail/jobtrail-backend/internal/identity"
	"github.com/jobtrail/jobtrail-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnalysisService struct {
	db *gorm.DB
}

func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// Save persists a completed compatibility result for history and
// dashboard aggregation. Analyses are append-only.
func (s *AnalysisService) Save(userID uuid.UUID, jobTitle string, result *ai.CompatibilityResult) (*models.Analysis, error) {
	if jobTitle == "" {
		jobTitle = "Unknown Position"
	}

	record := models.Analysis{
		ID:              uuid.New(),
		UserID:          userID,
		JobTitle:        jobTitle,
		MatchPercentage: result.MatchPercentage,
		MissingKeywords: encodeStringList(result.MissingKeywords),
		ImprovementTips: encodeStringList(result.ImprovementTips),
		Summary:         result.Summary,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return &record, nil
}

// History returns the caller's analyses, newest first.
func (s *AnalysisService) History(userID uuid.UUID) ([]models.Analysis, error) {
	var records []models.Analysis
	err := s.db.Scopes(identity.OwnedBy(userID)).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Latest returns the caller's most recent analysis.
func (s *AnalysisService) Latest(userID uuid.UUID) (*models.Analysis, error) {
	var record models.Analysis
	err := s.db.Scopes(identity.OwnedBy(userID)).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// PublicProfile returns the public subset of a user's profile plus
// their 10 most recent analyses, only when the visibility flag is set.
func (s *AnalysisService) PublicProfile(username string) (*dto.PublicProfileResponse, error) {
	var user models.User
	err := s.db.Where("username = ? AND is_public = true", username).First(&user).Error
	if err != nil {
		return nil, ErrUserNotFound
	}

	var records []models.Analysis
	err = s.db.Scopes(identity.OwnedBy(user.ID)).
		Order("created_at DESC").
		Limit(10).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.PublicAnalysisSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, dto.PublicAnalysisSummary{
			MatchPercentage: r.MatchPercentage,
			JobTitle:        r.JobTitle,
			CreatedAt:       r.CreatedAt.UTC().Format("2006-01-02"),
		})
	}

	return &dto.PublicProfileResponse{
		Name:     user.Name,
		Title:    user.Title,
		Bio:      user.Bio,
		Username: username,
		Analyses: summaries,
	}, nil
}

func encodeStringList(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func decodeStringList(raw datatypes.JSON) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}
