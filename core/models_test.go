package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "diacritics",
			content: "Este impermeabilă această gheată?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestFAQEntry_Tuple(t *testing.T) {
	tests := []struct {
		name  string
		entry FAQEntry
		want  string
	}{
		{
			name: "basic entry",
			entry: FAQEntry{
				ProductId: 7,
				Question:  "Are garantie?",
			},
			want: "(7,Are garantie?)",
		},
		{
			name: "empty question",
			entry: FAQEntry{
				ProductId: 1,
			},
			want: "(1,)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Tuple(); got != tt.want {
				t.Errorf("Tuple() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFAQEntry_TupleIDsAreStable(t *testing.T) {
	a := FAQEntry{ProductId: 3, Question: "Cum se curata?"}
	b := FAQEntry{ProductId: 3, Question: "Cum se curata?"}
	c := FAQEntry{ProductId: 4, Question: "Cum se curata?"}

	if IDFromContent(a.Tuple()) != IDFromContent(b.Tuple()) {
		t.Error("identical entries should hash to the same ID")
	}
	if IDFromContent(a.Tuple()) == IDFromContent(c.Tuple()) {
		t.Error("entries for different products should hash to different IDs")
	}
}
