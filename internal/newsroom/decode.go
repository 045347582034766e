package newsroom

import (
	"encoding/json"
	"strings"

	"mastikon/internal/llm"
)

func decodeAnalysis(text string) (AnalysisResult, error) {
	var result AnalysisResult
	if err := decodeWithSchema(text, AnalysisSchema(), &result); err != nil {
		return AnalysisResult{}, &ParseError{Target: "analysis", Err: err}
	}
	return result, nil
}

func decodeScript(text string) (TvScript, error) {
	var script TvScript
	if err := decodeWithSchema(text, ScriptSchema(), &script); err != nil {
		return TvScript{}, &ParseError{Target: "script", Err: err}
	}
	return script, nil
}

func decodeWithSchema(text string, schema *llm.Schema, out any) error {
	payload := []byte(cleanJSONResponse(text))
	if err := schema.ValidateJSON(payload); err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

// cleanJSONResponse strips markdown fences that some models wrap around JSON
// even when a JSON mime type was requested.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
