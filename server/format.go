package server

import (
	"fmt"
	"math"
	"strings"

	"github.com/mkurecka/supadata-mcp/supadata"
)

// FormatTranscript renders a transcript as the tool's text output. Segment
// offsets are shown in whole seconds, rounded down.
func FormatTranscript(result supadata.TranscriptResponse) (string, error) {
	var b strings.Builder

	switch t := result.(type) {
	case *supadata.TextTranscript:
		fmt.Fprintf(&b, "Transcript (%s):\n\n%s", t.Lang, t.Content)
	case *supadata.SegmentedTranscript:
		fmt.Fprintf(&b, "Transcript (%s) with %d segments:\n\n", t.Lang, len(t.Content))
		for i, seg := range t.Content {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "[%ds] %s", int64(math.Floor(seg.Offset/1000)), seg.Text)
		}
	default:
		return "", fmt.Errorf("unexpected transcript type %T", result)
	}

	if langs := result.AvailableLanguages(); len(langs) > 0 {
		fmt.Fprintf(&b, "\n\nAvailable languages: %s", strings.Join(langs, ", "))
	}

	return b.String(), nil
}
