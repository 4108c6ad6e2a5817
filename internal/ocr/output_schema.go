package ocr

import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Vision writes one JSON file per output shard; a shard that doesn't match
// this shape (partial write, metadata file) is skipped rather than trusted.
const visionOutputSchema = `{
  "type": "object",
  "required": ["responses"],
  "properties": {
    "responses": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "fullTextAnnotation": {
            "type": "object",
            "properties": {
              "text": { "type": "string" }
            }
          }
        }
      }
    }
  }
}`

var outputSchema = jsonschema.MustCompileString("vision-output.json", visionOutputSchema)

// extractOutputTexts returns the non-empty page texts from one Vision
// async-output JSON file, or nothing if the file is malformed.
func extractOutputTexts(content []byte) []string {
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil
	}
	if err := outputSchema.Validate(raw); err != nil {
		return nil
	}

	var parsed struct {
		Responses []struct {
			FullTextAnnotation *struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
		} `json:"responses"`
	}
	if err := json.Unmarshal(content, &parsed); err != nil {
		return nil
	}

	var texts []string
	for _, r := range parsed.Responses {
		if r.FullTextAnnotation == nil {
			continue
		}
		if t := strings.TrimSpace(r.FullTextAnnotation.Text); t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}
