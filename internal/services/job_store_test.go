package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
	"github.com/jobtrail/jobtrail-backend/internal/models"
)

func TestCreateSetsOwnerAndDefaultStatus(t *testing.T) {
	svc, _ := testJobService(t)
	userID := uuid.New()

	created, err := svc.Create(userID, &dto.CreateJobRequest{
		Company:  "Acme",
		Position: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The owner comes from the caller's identity, never the body.
	if created.UserID != userID {
		t.Errorf("user_id = %s, want %s", created.UserID, userID)
	}
	if created.Status != models.StatusApplied {
		t.Errorf("status = %s, want APPLIED", created.Status)
	}

	got, err := svc.Get(userID, created.ID)
	if err != nil {
		t.Fatalf("round-trip get failed: %v", err)
	}
	if got.Company != "Acme" || got.Position != "Backend Engineer" {
		t.Errorf("got %+v", got)
	}
}

func TestListReturnsOnlyOwnedRows(t *testing.T) {
	svc, _ := testJobService(t)
	alice, bob := uuid.New(), uuid.New()

	for _, company := range []string{"Acme", "Globex"} {
		if _, err := svc.Create(alice, &dto.CreateJobRequest{Company: company, Position: "Engineer"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.Create(bob, &dto.CreateJobRequest{Company: "Initech", Position: "Engineer"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	jobs, total, err := svc.List(alice, &dto.ListJobsQuery{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(jobs) != 2 {
		t.Errorf("alice sees %d rows (total %d), want 2", len(jobs), total)
	}
	for _, j := range jobs {
		if j.UserID != alice {
			t.Errorf("foreign row %s leaked into alice's list", j.ID)
		}
	}

	jobs, total, err = svc.List(bob, &dto.ListJobsQuery{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(jobs) != 1 || jobs[0].Company != "Initech" {
		t.Errorf("bob sees %d rows (total %d): %+v", len(jobs), total, jobs)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := testJobService(t)
	userID := uuid.New()

	if _, err := svc.Create(userID, &dto.CreateJobRequest{Company: "Acme", Position: "Engineer"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	offered, err := svc.Create(userID, &dto.CreateJobRequest{Company: "Globex", Position: "Engineer", Status: "OFFER"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	jobs, total, err := svc.List(userID, &dto.ListJobsQuery{Status: "OFFER"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(jobs) != 1 || jobs[0].ID != offered.ID {
		t.Errorf("got %d rows (total %d)", len(jobs), total)
	}
}

func TestCrossUserAccessYieldsNotFound(t *testing.T) {
	svc, db := testJobService(t)
	alice, bob := uuid.New(), uuid.New()

	job, err := svc.Create(alice, &dto.CreateJobRequest{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(bob, job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("get: expected ErrJobNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(bob, job.ID, models.StatusOffer); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("update status: expected ErrJobNotFound, got %v", err)
	}
	if err := svc.Delete(bob, job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("delete: expected ErrJobNotFound, got %v", err)
	}

	// The failed attempts must not have mutated the record.
	var reloaded models.JobApplication
	if err := db.First(&reloaded, "id = ?", job.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Status != models.StatusApplied {
		t.Errorf("status mutated to %s by a foreign caller", reloaded.Status)
	}
}

func TestUpdateStatusOwnRecord(t *testing.T) {
	svc, _ := testJobService(t)
	userID := uuid.New()

	job, err := svc.Create(userID, &dto.CreateJobRequest{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(userID, job.ID, models.StatusOffer)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != models.StatusOffer {
		t.Errorf("status = %s, want OFFER", updated.Status)
	}

	got, err := svc.Get(userID, job.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != models.StatusOffer {
		t.Errorf("persisted status = %s, want OFFER", got.Status)
	}
}

func TestDeleteIsSoftAndIdempotentlyNotFound(t *testing.T) {
	svc, db := testJobService(t)
	userID := uuid.New()

	job, err := svc.Create(userID, &dto.CreateJobRequest{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(userID, job.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(userID, job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("deleted job still resolves: %v", err)
	}
	if err := svc.Delete(userID, job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("second delete: expected ErrJobNotFound, got %v", err)
	}

	// Soft delete: the row survives with deleted_at set.
	var raw models.JobApplication
	if err := db.Unscoped().First(&raw, "id = ?", job.ID).Error; err != nil {
		t.Fatalf("unscoped reload failed: %v", err)
	}
	if !raw.DeletedAt.Valid {
		t.Error("deleted_at not set")
	}
}
