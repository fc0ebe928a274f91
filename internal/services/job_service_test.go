package services

import (
	"testing"

	"github.com/jobtrail/jobtrail-backend/internal/models"
)

func TestStatusCounts(t *testing.T) {
	counts, total := statusCounts(map[models.Status]int64{
		models.StatusApplied:   3,
		models.StatusInterview: 1,
		models.StatusRejected:  2,
	})

	if total != 6 {
		t.Errorf("total = %d, want 6", total)
	}
	if counts.Applied != 3 || counts.Interview != 1 || counts.Rejected != 2 {
		t.Errorf("counts = %+v", counts)
	}
	// Absent statuses still appear, as zero.
	if counts.Offer != 0 {
		t.Errorf("offer = %d, want 0", counts.Offer)
	}
}

func TestStatusCountsEmpty(t *testing.T) {
	counts, total := statusCounts(nil)
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if counts.Applied != 0 || counts.Interview != 0 || counts.Offer != 0 || counts.Rejected != 0 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestRateString(t *testing.T) {
	tests := []struct {
		part, total int64
		want        string
	}{
		{0, 0, "0%"},
		{1, 6, "16.7%"},
		{2, 6, "33.3%"},
		{6, 6, "100.0%"},
		{0, 10, "0.0%"},
	}

	for _, tt := range tests {
		if got := rateString(tt.part, tt.total); got != tt.want {
			t.Errorf("rateString(%d, %d) = %q, want %q", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestClampPaging(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{2, 25, 2, 25},
		{1, 1000, 1, 100},
	}

	for _, tt := range tests {
		page, limit := clampPaging(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("clampPaging(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}
