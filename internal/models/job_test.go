package models

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}

	for _, s := range []Status{"", "applied", "GHOSTED", "APPLIED "} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
