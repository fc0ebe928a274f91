package dto

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "s3cretpass"},
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Name: "Jane Doe", Password: "s3cretpass"},
			wantErr: "email is required",
		},
		{
			name:    "malformed email",
			req:     RegisterRequest{Name: "Jane Doe", Email: "not-an-email", Password: "s3cretpass"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			req:     RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name:    "everything missing joins messages",
			req:     RegisterRequest{},
			wantErr: "name is required; email is required; password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("got %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateStatusOneOf(t *testing.T) {
	if err := Validate(&UpdateStatusRequest{Status: "INTERVIEW"}); err != nil {
		t.Errorf("INTERVIEW should be valid: %v", err)
	}

	err := Validate(&UpdateStatusRequest{Status: "GHOSTED"})
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if !strings.Contains(err.Error(), "status must be one of") {
		t.Errorf("got %q", err.Error())
	}

	// Lowercase does not pass; the enum is case-sensitive.
	if err := Validate(&CreateJobRequest{Company: "Acme", Position: "Engineer", Status: "applied"}); err == nil {
		t.Error("lowercase status should be rejected")
	}
}

func TestValidateAutoFillRequest(t *testing.T) {
	if err := Validate(&AutoFillRequest{URL: "https://jobs.example.com/posting/42"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate(&AutoFillRequest{URL: "not a url"}); err == nil {
		t.Error("expected error for malformed url")
	}
	if err := Validate(&AutoFillRequest{}); err == nil {
		t.Error("expected error for missing url")
	}
}

func TestValidateUpdateProfileRequest(t *testing.T) {
	// All fields optional
	if err := Validate(&UpdateProfileRequest{}); err != nil {
		t.Errorf("empty update should be valid: %v", err)
	}

	if err := Validate(&UpdateProfileRequest{Username: strPtr("jane42")}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate(&UpdateProfileRequest{Username: strPtr("jane doe!")}); err == nil {
		t.Error("username with spaces and punctuation should be rejected")
	}
	if err := Validate(&UpdateProfileRequest{Username: strPtr("ab")}); err == nil {
		t.Error("two-character username should be rejected")
	}
}

func TestValidateListJobsQuery(t *testing.T) {
	if err := Validate(&ListJobsQuery{}); err != nil {
		t.Errorf("zero query should be valid: %v", err)
	}
	if err := Validate(&ListJobsQuery{Status: "OFFER", Page: 2, Limit: 50}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate(&ListJobsQuery{Limit: 500}); err == nil {
		t.Error("limit above 100 should be rejected")
	}
}
