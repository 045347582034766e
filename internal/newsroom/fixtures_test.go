package newsroom

import (
	"context"
	"sync"

	"mastikon/internal/llm"
)

type capturedCall struct {
	model string
	req   llm.GenerateContentRequest
}

type fakeContentGenerator struct {
	mu         sync.Mutex
	configured bool
	responses  []string
	err        error
	calls      []capturedCall
}

func newFakeClient(responses ...string) *fakeContentGenerator {
	return &fakeContentGenerator{configured: true, responses: responses}
}

func (f *fakeContentGenerator) Configured() bool { return f.configured }

func (f *fakeContentGenerator) GenerateContent(ctx context.Context, model string, req llm.GenerateContentRequest) (*llm.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, capturedCall{model: model, req: req})
	if f.err != nil {
		return nil, f.err
	}
	text := ""
	if len(f.responses) > 0 {
		text = f.responses[0]
		f.responses = f.responses[1:]
	}
	candidate := llm.Candidate{Content: llm.Content{Role: "model", Parts: []llm.Part{{Text: text}}}}
	return &llm.GenerateContentResponse{Candidates: []llm.Candidate{candidate}}, nil
}

func (f *fakeContentGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeContentGenerator) lastCall() capturedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func fireIntake() NewsIntake {
	return NewsIntake{
		Topic:        "Kebakaran Pasar",
		EventType:    "Bencana",
		Location:     "Pasar Baru, Gresik",
		DateTime:     "Selasa, 4 Maret 2025",
		What:         "Kebakaran melanda los sayur",
		Interviewees: []Interviewee{{ID: "1", Name: "Budi", Title: "Saksi Mata"}},
	}
}

const fireAnalysisJSON = `{
  "masTikonAnalysis": {
    "newsValue": "Dampak langsung ke pedagang",
    "generatedAngle": "Pedagang kehilangan mata pencaharian",
    "angleReasoning": "Sisi manusia paling kuat"
  },
  "fieldGuide": ["Datangi lokasi", "Temui saksi"],
  "shotList": {
    "establishing": ["Wide pasar"],
    "activities": ["Petugas memadamkan api"],
    "closeUps": ["Puing los sayur"],
    "cutaways": ["Warga menonton"],
    "interviews": [
      {"name": "Budi", "title": "Saksi Mata", "suggestedQuestions": ["Apa yang terjadi?"]}
    ],
    "naturalSound": ["Sirene"]
  },
  "technicalGuide": ["Gunakan tripod"],
  "tvScript": {
    "slug": "KEBAKARAN PASAR",
    "anchorIntro": "KEBAKARAN MELANDA PASAR BARU//",
    "body": "API MUNCUL DARI LOS SAYUR//",
    "cgs": {"cg1": ["BUDI (SAKSI MATA) - KEBAKARAN"], "cg3": "PASAR BARU/ GRESIK"},
    "fullText": "KEBAKARAN PASAR\n\nKEBAKARAN MELANDA PASAR BARU//"
  },
  "feedback": "Fokus pada korban"
}`

const fireScriptJSON = `{
  "slug": "KEBAKARAN PASAR",
  "anchorIntro": "KEBAKARAN MELANDA PASAR BARU//",
  "body": "API MUNCUL DARI DAPUR//\n\nSOT BUDI",
  "cgs": {"cg1": ["BUDI (SAKSI MATA) - AWAL KEBAKARAN"], "cg3": "PASAR BARU/ GRESIK"},
  "fullText": "KEBAKARAN PASAR\n\nAPI MUNCUL DARI DAPUR//"
}`
