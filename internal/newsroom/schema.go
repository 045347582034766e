package newsroom

import "mastikon/internal/llm"

func stringSchema(description string) *llm.Schema {
	return &llm.Schema{Type: llm.TypeString, Description: description}
}

func stringListSchema(description string) *llm.Schema {
	return &llm.Schema{Type: llm.TypeArray, Items: &llm.Schema{Type: llm.TypeString}, Description: description}
}

// ScriptSchema is the response shape of a script revision.
func ScriptSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"slug":        stringSchema("Judul pendek berita (SLUG)"),
			"anchorIntro": stringSchema("Naskah untuk presenter di studio (Format TV)"),
			"body":        stringSchema("Naskah Voice Over (Format TV) dengan spasi antar paragraf"),
			"cgs": {
				Type: llm.TypeObject,
				Properties: map[string]*llm.Schema{
					"cg1": stringListSchema("Format: NAMA (JABATAN) - TOPIK SINGKAT"),
					"cg3": stringSchema("Lokasi / Locator untuk CG Tempat"),
				},
				Required: []string{"cg1", "cg3"},
			},
			"fullText": stringSchema("Gabungan seluruh naskah yang sudah diformat sempurna dengan jarak antar paragraf"),
		},
		Required: []string{"slug", "anchorIntro", "body", "cgs", "fullText"},
	}
}

// AnalysisSchema is the response shape of the first editorial analysis.
func AnalysisSchema() *llm.Schema {
	interview := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"name":               stringSchema(""),
			"title":              stringSchema(""),
			"suggestedQuestions": stringListSchema(""),
		},
		Required: []string{"name", "title", "suggestedQuestions"},
	}

	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"masTikonAnalysis": {
				Type: llm.TypeObject,
				Properties: map[string]*llm.Schema{
					"newsValue":      stringSchema("Penjelasan nilai berita"),
					"generatedAngle": stringSchema("Usulan angle berita yang dibuat oleh AI berdasarkan data"),
					"angleReasoning": stringSchema("Alasan pemilihan angle tersebut"),
				},
				Required: []string{"newsValue", "generatedAngle", "angleReasoning"},
			},
			"fieldGuide": stringListSchema("Langkah-langkah liputan step-by-step"),
			"shotList": {
				Type: llm.TypeObject,
				Properties: map[string]*llm.Schema{
					"establishing": stringListSchema(""),
					"activities":   stringListSchema(""),
					"closeUps":     stringListSchema(""),
					"cutaways":     stringListSchema(""),
					"naturalSound": stringListSchema(""),
					"interviews": {
						Type:        llm.TypeArray,
						Items:       interview,
						Description: "Daftar pertanyaan spesifik untuk setiap narasumber sesuai jabatannya",
					},
				},
				Required: []string{"establishing", "activities", "closeUps", "cutaways", "interviews", "naturalSound"},
			},
			"technicalGuide": stringListSchema(""),
			"tvScript":       ScriptSchema(),
			"feedback":       stringSchema("Catatan penutup dari Mas Tikon"),
		},
		Required: []string{"masTikonAnalysis", "fieldGuide", "shotList", "technicalGuide", "tvScript", "feedback"},
	}
}
