package newsroom

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mastikon/internal/llm"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel               = "gemini-3-flash-preview"
	defaultAnalysisTemperature = 0.5
	defaultScriptTemperature   = 0.4
)

// Generator turns intakes into model requests and model text back into typed
// results. It keeps no state between calls.
type Generator struct {
	Client              llm.ContentGenerator
	Model               string
	AnalysisTemperature float64
	ScriptTemperature   float64
	Logger              *slog.Logger
}

// NewGenerator constructs a Generator with the default temperatures.
func NewGenerator(client llm.ContentGenerator, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		Client:              client,
		Model:               model,
		AnalysisTemperature: defaultAnalysisTemperature,
		ScriptTemperature:   defaultScriptTemperature,
		Logger:              slog.Default(),
	}
}

// Configured reports whether the underlying client holds a credential.
func (g *Generator) Configured() bool {
	return g != nil && g.Client != nil && g.Client.Configured()
}

// GenerateEditorialAnalysis asks the model for the full coverage package.
func (g *Generator) GenerateEditorialAnalysis(ctx context.Context, intake NewsIntake) (AnalysisResult, error) {
	if !g.Configured() {
		return AnalysisResult{}, ErrMissingCredential
	}

	text, err := g.generate(ctx, "analysis", analysisInstruction, buildAnalysisPrompt(intake), AnalysisSchema(), g.AnalysisTemperature)
	if err != nil {
		return AnalysisResult{}, err
	}

	result, err := decodeAnalysis(text)
	if err != nil {
		g.logger().Error("decode analysis response", "error", err)
		return AnalysisResult{}, err
	}
	return result, nil
}

// RegenerateScriptWithSOT rewrites the script around the interview summaries
// the trainee filled in. With no summaries it returns script unchanged and
// makes no call.
func (g *Generator) RegenerateScriptWithSOT(ctx context.Context, script TvScript, interviews []InterviewGuide, intake NewsIntake) (TvScript, error) {
	answered := answeredInterviews(interviews)
	if len(answered) == 0 {
		return script, nil
	}
	if !g.Configured() {
		return TvScript{}, ErrMissingCredential
	}

	text, err := g.generate(ctx, "script", revisionInstruction, buildRevisionPrompt(script, answered, intake), ScriptSchema(), g.ScriptTemperature)
	if err != nil {
		return TvScript{}, err
	}

	revised, err := decodeScript(text)
	if err != nil {
		g.logger().Error("decode script response", "error", err)
		return TvScript{}, err
	}
	return revised, nil
}

func (g *Generator) generate(ctx context.Context, kind, instruction, prompt string, schema *llm.Schema, temperature float64) (string, error) {
	req := llm.GenerateContentRequest{
		Contents:          []llm.Content{{Role: "user", Parts: []llm.Part{{Text: prompt}}}},
		SystemInstruction: &llm.Content{Parts: []llm.Part{{Text: instruction}}},
		GenerationConfig: &llm.GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
			Temperature:      llm.Float(temperature),
		},
	}

	g.logger().Info("requesting generation", "kind", kind, "model", g.Model, "temperature", temperature)

	resp, err := g.Client.GenerateContent(ctx, g.Model, req)
	if err != nil {
		g.logger().Error("model request failed", "kind", kind, "error", err)
		return "", fmt.Errorf("generate %s: %w", kind, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		g.logger().Error("model returned no text", "kind", kind)
		return "", ErrNoContent
	}
	return text, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
