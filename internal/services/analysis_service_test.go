package services

import (
	"testing"

	"gorm.io/datatypes"
)

func TestEncodeStringList(t *testing.T) {
	if got := string(encodeStringList(nil)); got != "[]" {
		t.Errorf("nil list encoded to %q, want []", got)
	}
	if got := string(encodeStringList([]string{})); got != "[]" {
		t.Errorf("empty list encoded to %q, want []", got)
	}
	if got := string(encodeStringList([]string{"Docker", "gRPC"})); got != `["Docker","gRPC"]` {
		t.Errorf("got %q", got)
	}
}

func TestDecodeStringList(t *testing.T) {
	got := decodeStringList(datatypes.JSON(`["one","two"]`))
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("got %v", got)
	}

	if got := decodeStringList(datatypes.JSON(`not json`)); got != nil {
		t.Errorf("malformed input should decode to nil, got %v", got)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	in := []string{"Kubernetes", "CI/CD", "event sourcing"}
	out := decodeStringList(encodeStringList(in))
	if len(out) != len(in) {
		t.Fatalf("got %v", out)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: got %q, want %q", i, out[i], in[i])
		}
	}
}
