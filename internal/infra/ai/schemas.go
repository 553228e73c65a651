package ai

import (
	"encoding/json"

	"github.com/qri-io/jsonschema"
)

const ideaAnalysisSchema = `{
  "type": "object",
  "required": ["score", "summary", "strengths", "weaknesses", "suggestions"],
  "properties": {
    "score": {"type": "integer", "minimum": 1, "maximum": 10},
    "summary": {"type": "string", "minLength": 1},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": "array", "items": {"type": "string"}},
    "marketPotential": {"type": "string"}
  }
}`

const businessModelSchema = `{
  "type": "object",
  "required": ["modelType", "valuePropositions", "customerSegments", "revenueStreams"],
  "properties": {
    "modelType": {"type": "string", "minLength": 1},
    "valuePropositions": {"type": "array", "items": {"type": "string"}},
    "customerSegments": {"type": "array", "items": {"type": "string"}},
    "channels": {"type": "array", "items": {"type": "string"}},
    "revenueStreams": {"type": "array", "items": {"type": "string"}},
    "keyActivities": {"type": "array", "items": {"type": "string"}},
    "costStructure": {"type": "array", "items": {"type": "string"}},
    "rationale": {"type": "string"}
  }
}`

const pitchDeckSchema = `{
  "type": "object",
  "required": ["title", "slides"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "slides": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["heading", "bullets"],
        "properties": {
          "heading": {"type": "string", "minLength": 1},
          "bullets": {"type": "array", "items": {"type": "string"}},
          "notes": {"type": "string"}
        }
      }
    }
  }
}`

func mustCompileSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic("compile response schema: " + err.Error())
	}

	return rs
}

var (
	ideaAnalysisResponse  = mustCompileSchema(ideaAnalysisSchema)
	businessModelResponse = mustCompileSchema(businessModelSchema)
	pitchDeckResponse     = mustCompileSchema(pitchDeckSchema)
)
