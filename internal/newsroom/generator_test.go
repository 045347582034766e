package newsroom

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mastikon/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEditorialAnalysisRoundTrip(t *testing.T) {
	client := newFakeClient(fireAnalysisJSON)
	gen := NewGenerator(client, "")

	result, err := gen.GenerateEditorialAnalysis(context.Background(), fireIntake())
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, fireAnalysisJSON, string(encoded))

	call := client.lastCall()
	assert.Equal(t, DefaultModel, call.model)
	cfg := call.req.GenerationConfig
	require.NotNil(t, cfg)
	assert.Equal(t, "application/json", cfg.ResponseMimeType)
	assert.Equal(t, 0.5, *cfg.Temperature)
	assert.ElementsMatch(t, AnalysisSchema().Required, cfg.ResponseSchema.Required)

	prompt := call.req.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Topik: Kebakaran Pasar")
	assert.Contains(t, prompt, "- Nama: Budi, Jabatan: Saksi Mata")
	assert.Contains(t, call.req.SystemInstruction.Parts[0].Text, "Mas Tikon")
}

func TestGenerateEditorialAnalysisAcceptsFencedJSON(t *testing.T) {
	gen := NewGenerator(newFakeClient("```json\n"+fireAnalysisJSON+"\n```"), "")

	result, err := gen.GenerateEditorialAnalysis(context.Background(), fireIntake())
	require.NoError(t, err)
	assert.Equal(t, "KEBAKARAN PASAR", result.TvScript.Slug)
}

func TestGenerateEditorialAnalysisWithoutCredential(t *testing.T) {
	client := newFakeClient(fireAnalysisJSON)
	client.configured = false
	gen := NewGenerator(client, "")

	_, err := gen.GenerateEditorialAnalysis(context.Background(), fireIntake())
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, 0, client.callCount())
}

func TestGenerateEditorialAnalysisFailures(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		clientErr error
		check     func(t *testing.T, err error)
	}{
		{
			name:     "empty text",
			response: "   ",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoContent)
			},
		},
		{
			name:     "not json",
			response: "Maaf, saya tidak bisa.",
			check: func(t *testing.T, err error) {
				var perr *ParseError
				assert.True(t, errors.As(err, &perr))
			},
		},
		{
			name:     "schema violation",
			response: `{"masTikonAnalysis":{"newsValue":"x","generatedAngle":"y","angleReasoning":"z"}}`,
			check: func(t *testing.T, err error) {
				var perr *ParseError
				require.True(t, errors.As(err, &perr))
				var verr *llm.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "$.fieldGuide", verr.Path)
			},
		},
		{
			name:      "transport failure",
			clientErr: errors.New("connection reset"),
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeClient(tt.response)
			client.err = tt.clientErr
			gen := NewGenerator(client, "")

			_, err := gen.GenerateEditorialAnalysis(context.Background(), fireIntake())
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, 1, client.callCount(), "failures are never retried")
		})
	}
}

func TestRegenerateWithoutSummariesIsNoop(t *testing.T) {
	client := newFakeClient(fireScriptJSON)
	client.configured = false
	gen := NewGenerator(client, "")

	script := TvScript{Slug: "SLUG", FullText: "NASKAH", CGs: CharacterGenerators{CG1: []string{"A (B) - C"}}}
	interviews := []InterviewGuide{
		{Name: "Budi", Title: "Saksi Mata"},
		{Name: "Sari", Title: "Pedagang", AnswerSummary: "  \n\t "},
	}

	got, err := gen.RegenerateScriptWithSOT(context.Background(), script, interviews, fireIntake())
	require.NoError(t, err)
	assert.Equal(t, script, got)
	assert.Equal(t, 0, client.callCount())
}

func TestRegenerateScriptWithSOT(t *testing.T) {
	client := newFakeClient(fireScriptJSON)
	gen := NewGenerator(client, "gemini-test")

	current := TvScript{Slug: "KEBAKARAN PASAR", FullText: "NASKAH LAMA//"}
	interviews := []InterviewGuide{
		{Name: "Budi", Title: "Saksi Mata", AnswerSummary: "Saksi melihat api dari dapur"},
		{Name: "Tanpa Jawaban", Title: "Warga"},
		{Name: "Sari", Title: "Pedagang", AnswerSummary: "Dagangan habis terbakar"},
	}

	got, err := gen.RegenerateScriptWithSOT(context.Background(), current, interviews, fireIntake())
	require.NoError(t, err)
	assert.Equal(t, []string{"BUDI (SAKSI MATA) - AWAL KEBAKARAN"}, got.CGs.CG1)

	call := client.lastCall()
	assert.Equal(t, "gemini-test", call.model)
	assert.Equal(t, 0.4, *call.req.GenerationConfig.Temperature)
	assert.ElementsMatch(t, ScriptSchema().Required, call.req.GenerationConfig.ResponseSchema.Required)

	prompt := call.req.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "NASKAH LAMA//")
	assert.Contains(t, prompt, "NARASUMBER: Budi (Saksi Mata)\nPOIN PENTING WAWANCARA: \"Saksi melihat api dari dapur\"")
	assert.Contains(t, prompt, summaryDivider+"NARASUMBER: Sari (Pedagang)")
	assert.NotContains(t, prompt, "Tanpa Jawaban")
	assert.Equal(t, 1, strings.Count(prompt, "===================="))
}

func TestRegenerateScriptRejectsPartialScript(t *testing.T) {
	gen := NewGenerator(newFakeClient(`{"slug":"X","body":"Y"}`), "")
	interviews := []InterviewGuide{{Name: "Budi", AnswerSummary: "ada"}}

	_, err := gen.RegenerateScriptWithSOT(context.Background(), TvScript{}, interviews, fireIntake())
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "script", perr.Target)
}
