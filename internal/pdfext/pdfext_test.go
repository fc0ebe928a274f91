package pdfext

import "testing"

func TestExtractTextRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte(""),
		[]byte("plain text, not a pdf"),
		[]byte("%PDF-1.4 truncated"),
	} {
		if _, err := ExtractText(data); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}
