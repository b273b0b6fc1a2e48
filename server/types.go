package server

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ToolGetTranscript = "get_transcript"

	toolDescription = "Get transcript from video URL (YouTube, TikTok, X/Twitter) or audio file"
)

// TranscriptArgs describes the arguments of the get_transcript tool. The
// tool's input schema is reflected from it.
type TranscriptArgs struct {
	URL  string `json:"url" jsonschema_description:"Video or audio file URL to transcribe"`
	Lang string `json:"lang,omitempty" jsonschema_description:"Preferred language code (optional)"`
	Text bool   `json:"text,omitempty" jsonschema:"default=false" jsonschema_description:"Return plain text transcript instead of detailed segments (default: false)"`
	Mode string `json:"mode,omitempty" jsonschema:"enum=native,enum=generate,enum=auto,default=auto" jsonschema_description:"Transcript mode: native (existing only), generate (AI only), auto (try native first)"`
}

// GenerateSchema creates a JSON schema for the given type T, inlined and
// without additional properties.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// TranscriptArgsSchema is the pre-generated input schema of get_transcript.
var TranscriptArgsSchema = mustMarshal(GenerateSchema[TranscriptArgs]())

func mustMarshal(schema *jsonschema.Schema) json.RawMessage {
	data, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return data
}

func transcriptTool() mcp.Tool {
	return mcp.NewToolWithRawSchema(ToolGetTranscript, toolDescription, TranscriptArgsSchema)
}
