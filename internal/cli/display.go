package cli

import (
	"fmt"
	"strings"

	"mastikon/internal/newsroom"
)

// DisplayAnalysis prints every section of a result the way the result tabs
// show it.
func DisplayAnalysis(result *newsroom.AnalysisResult) {
	if result == nil {
		PrintWarning("Belum ada hasil analisis.")
		return
	}

	PrintTitle("Analisis Angle")
	PrintSeparator()
	printField("Catatan Mas Tikon", result.Feedback)
	printField("Nilai Berita", result.MasTikonAnalysis.NewsValue)
	printField("Angle Terpilih", result.MasTikonAnalysis.GeneratedAngle)
	printField("Alasan", result.MasTikonAnalysis.AngleReasoning)

	PrintTitle("Panduan Lapangan")
	PrintSeparator()
	printList("SOP Liputan di Lokasi", result.FieldGuide)
	printList("Panduan Teknis", result.TechnicalGuide)

	PrintTitle("Shot List & SOT")
	PrintSeparator()
	printList("Establishing Shot", result.ShotList.Establishing)
	printList("Aktivitas Utama", result.ShotList.Activities)
	printList("Close Up / Detail", result.ShotList.CloseUps)
	printList("Cutaway / Insert", result.ShotList.Cutaways)
	printList("Natural Sound", result.ShotList.NaturalSound)
	for i, guide := range result.ShotList.Interviews {
		LabelColor.Printf("%d. %s (%s)\n", i+1, guide.Name, guide.Title)
		for _, q := range guide.SuggestedQuestions {
			fmt.Printf("   - %s\n", q)
		}
		if strings.TrimSpace(guide.AnswerSummary) != "" {
			fmt.Printf("   SOT: %s\n", guide.AnswerSummary)
		}
	}

	DisplayScript(result.TvScript)
}

// DisplayScript prints the broadcast script.
func DisplayScript(script newsroom.TvScript) {
	PrintTitle("Naskah TV")
	PrintSeparator()
	printField("SLUG", script.Slug)
	printList("CG 1", script.CGs.CG1)
	printField("CG 3", script.CGs.CG3)
	fmt.Println()
	fmt.Println(script.FullText)
	PrintSeparator()
}

func printField(label, value string) {
	LabelColor.Printf("%s: ", label)
	fmt.Println(value)
}

func printList(label string, items []string) {
	LabelColor.Println(label)
	if len(items) == 0 {
		fmt.Println("   (kosong)")
		return
	}
	for _, item := range items {
		fmt.Printf("   • %s\n", item)
	}
}
