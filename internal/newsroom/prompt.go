package newsroom

import (
	"fmt"
	"strings"
)

const analysisInstruction = `Kamu adalah Mas Tikon, Produser Senior TV.

ATURAN KHUSUS PEMBUATAN NASKAH TV (WAJIB PATUH):
1. GUNAKAN HURUF KAPITAL (ALL CAPS) UNTUK SELURUH BAGIAN NASKAH.
2. GANTI TANDA BACA: Koma (,) -> Garis Miring (/). Titik (.) -> Garis Miring Ganda (//).
3. ANGKA: Tulis terbilang (SATU, SEPULUH). Kecuali Tahun (2025).
4. SPACING/LAYOUT: Berikan jarak 1 baris kosong (Double Enter) antar paragraf/alenia agar naskah enak dibaca di teleprompter.
5. STRUKTUR: SLUG -> ANCHOR INTRO -> PKG/VO -> SOT.

ATURAN CG (CHARACTER GENERATOR):
CG 1 harus lengkap: "NAMA NARASUMBER (JABATAN) - TOPIK SINGKAT".
Contoh: "BUDI SANTOSO (SAKSI MATA) - KRONOLOGI KEBAKARAN".

Jadilah mentor yang tegas tapi solutif.`

const revisionInstruction = `Kamu adalah Mas Tikon, Editor Berita TV Senior.
Tugasmu adalah MEREVISI naskah berita untuk memasukkan SOT.

ATURAN EDITING:
1. PERTAHANKAN Format Naskah TV (ALL CAPS).
2. TEKNIS: Koma diganti (/), Titik diganti (//), Angka diganti Huruf.
3. LAYOUT (PENTING): Pisahkan setiap paragraf/alenia dengan JARAK BARIS KOSONG (Double Line Break). Jangan biarkan naskah menumpuk.

ATURAN SOT & CG:
1. Masukkan SOT ke dalam BODY naskah secara mengalir.
2. Format CG 1: "NAMA (JABATAN) - TOPIK SINGKAT".
   Topik diambil dari inti SOT yang diucapkan.
   Contoh: "KHOIRUL ANWAR (REKTOR UMG) - TARGET AKREDITASI".`

// summaryDivider separates interview summaries in the revision prompt.
const summaryDivider = "\n\n====================\n\n"

func buildAnalysisPrompt(intake NewsIntake) string {
	lines := make([]string, 0, len(intake.Interviewees))
	for _, person := range intake.Interviewees {
		lines = append(lines, fmt.Sprintf("- Nama: %s, Jabatan: %s", person.Name, person.Title))
	}

	return fmt.Sprintf(`Data Liputan Jurnalis Magang:
Topik: %s
Jenis: %s
Lokasi: %s
Waktu: %s
Penyelenggara: %s
Tokoh Kunci: %s

DATA 5W+1H:
What: %s
Who: %s
When: %s
Where: %s
Why: %s
How: %s

DAFTAR NARASUMBER:
%s

TUGASMU:
1. Tentukan ANGLE terbaik.
2. Buatkan daftar pertanyaan spesifik.
3. Buat NASKAH TV STANDAR SIAP TAYANG.
4. PENTING: Pada output 'fullText' dan 'body', pastikan ada jarak SPASI/ENTER antar alenia (paragraph break) agar tidak menumpuk.
5. CG 1 harus mencantumkan topik singkat (max 3 kata) yang relevan dengan jabatan narasumber.`,
		intake.Topic,
		intake.EventType,
		intake.Location,
		intake.DateTime,
		intake.Organizer,
		intake.KeyFigures,
		intake.What,
		intake.Who,
		intake.When,
		intake.Where,
		intake.Why,
		intake.How,
		strings.Join(lines, "\n"),
	)
}

// answeredInterviews keeps the guides whose summary has non-blank text.
func answeredInterviews(interviews []InterviewGuide) []InterviewGuide {
	var out []InterviewGuide
	for _, guide := range interviews {
		if strings.TrimSpace(guide.AnswerSummary) != "" {
			out = append(out, guide)
		}
	}
	return out
}

func formatSummaries(answered []InterviewGuide) string {
	blocks := make([]string, 0, len(answered))
	for _, guide := range answered {
		blocks = append(blocks, fmt.Sprintf("NARASUMBER: %s (%s)\nPOIN PENTING WAWANCARA: \"%s\"", guide.Name, guide.Title, guide.AnswerSummary))
	}
	return strings.Join(blocks, summaryDivider)
}

func buildRevisionPrompt(script TvScript, answered []InterviewGuide, intake NewsIntake) string {
	return fmt.Sprintf(`TOPIK LIPUTAN: %s
LOKASI: %s

BERIKUT ADALAH NASKAH BERITA SAAT INI:
%s

BERIKUT ADALAH HASIL WAWANCARA (SOT) BARU:
%s

INSTRUKSI PERBAIKAN:
Tulis ulang seluruh naskah (fullText).
1. Masukkan SOT ke dalam alur cerita.
2. Pastikan CG 1 diupdate sesuai format "NAMA (JABATAN) - TOPIK".
3. RAPIKAN LAYOUT: Beri jarak spasi antar alenia agar enak dilihat saat dicopy.

OUTPUT HARUS DALAM FORMAT JSON SESUAI SCHEMA (tvScript).`,
		intake.Topic,
		intake.Location,
		script.FullText,
		formatSummaries(answered),
	)
}
