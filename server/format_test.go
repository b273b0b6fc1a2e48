package server

import (
	"strings"
	"testing"

	"github.com/mkurecka/supadata-mcp/supadata"
)

func TestFormatTranscript_Text(t *testing.T) {
	out, err := FormatTranscript(&supadata.TextTranscript{
		Content: "Hello world",
		Lang:    "en",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "Transcript (en):\n\nHello world"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestFormatTranscript_Segments(t *testing.T) {
	out, err := FormatTranscript(&supadata.SegmentedTranscript{
		Lang: "en",
		Content: []supadata.Segment{
			{Text: "first", Offset: 0, Duration: 999},
			{Text: "second", Offset: 999, Duration: 2000},
			{Text: "third", Offset: 1000, Duration: 1000},
			{Text: "fourth", Offset: 61999.9, Duration: 1000},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "Transcript (en) with 4 segments:\n\n" +
		"[0s] first\n" +
		"[0s] second\n" +
		"[1s] third\n" +
		"[61s] fourth"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestFormatTranscript_NoSegments(t *testing.T) {
	out, err := FormatTranscript(&supadata.SegmentedTranscript{Lang: "fr"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "Transcript (fr) with 0 segments:\n\n" {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestFormatTranscript_AvailableLanguages(t *testing.T) {
	testCases := []struct {
		name        string
		langs       []string
		wantTrailer bool
	}{
		{name: "Two languages", langs: []string{"en", "es"}, wantTrailer: true},
		{name: "Empty list", langs: []string{}},
		{name: "Nil list", langs: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := FormatTranscript(&supadata.TextTranscript{
				Content:        "hola",
				Lang:           "es",
				AvailableLangs: tc.langs,
			})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			hasTrailer := strings.Contains(out, "Available languages")
			if hasTrailer != tc.wantTrailer {
				t.Errorf("Expected trailer=%v, got output %q", tc.wantTrailer, out)
			}
			if tc.wantTrailer && !strings.HasSuffix(out, "\n\nAvailable languages: en, es") {
				t.Errorf("Unexpected trailer in %q", out)
			}
		})
	}
}
