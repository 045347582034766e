package transporthttp

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"mastikon/internal/newsroom"
)

//go:embed templates/index.html
var templateFS embed.FS

type formField struct {
	Name      string
	Label     string
	Multiline bool
}

// intakeFields are the scalar intake inputs in form order.
var intakeFields = []formField{
	{Name: "topic", Label: "Judul / Topik"},
	{Name: "eventType", Label: "Jenis Acara"},
	{Name: "dateTime", Label: "Waktu"},
	{Name: "location", Label: "Lokasi"},
	{Name: "organizer", Label: "Penyelenggara"},
	{Name: "keyFigures", Label: "Tokoh Utama"},
	{Name: "what", Label: "What (Apa)", Multiline: true},
	{Name: "who", Label: "Who (Siapa)", Multiline: true},
	{Name: "when", Label: "When (Kapan)", Multiline: true},
	{Name: "where", Label: "Where (Di mana)", Multiline: true},
	{Name: "why", Label: "Why (Mengapa)", Multiline: true},
	{Name: "how", Label: "How (Bagaimana)", Multiline: true},
}

var tabLabels = map[newsroom.Tab]string{
	newsroom.TabAnalysis: "Analisis Angle",
	newsroom.TabGuide:    "Panduan Lapangan",
	newsroom.TabShotList: "Shot List & SOT",
	newsroom.TabScript:   "Naskah TV",
}

type fieldValue struct {
	formField
	Value string
}

type pageData struct {
	newsroom.Snapshot
	Model  string
	Fields []fieldValue
	Tabs   []newsroom.Tab
}

func mustParsePage() *template.Template {
	funcs := template.FuncMap{
		"inc":      func(i int) int { return i + 1 },
		"tabLabel": func(tab newsroom.Tab) string { return tabLabels[tab] },
	}
	return template.Must(template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html"))
}

func fieldValues(intake newsroom.NewsIntake) []fieldValue {
	values := map[string]string{
		"topic":      intake.Topic,
		"eventType":  intake.EventType,
		"dateTime":   intake.DateTime,
		"location":   intake.Location,
		"organizer":  intake.Organizer,
		"keyFigures": intake.KeyFigures,
		"what":       intake.What,
		"who":        intake.Who,
		"when":       intake.When,
		"where":      intake.Where,
		"why":        intake.Why,
		"how":        intake.How,
	}
	out := make([]fieldValue, 0, len(intakeFields))
	for _, f := range intakeFields {
		out = append(out, fieldValue{formField: f, Value: values[f.Name]})
	}
	return out
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	snap := s.session(w, r).Snapshot()
	data := pageData{
		Snapshot: snap,
		Model:    s.modelLabel,
		Fields:   fieldValues(snap.Intake),
		Tabs:     newsroom.Tabs(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render page", "error", err)
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// applyPostedIntake copies posted form values into the session intake. Only
// keys present in the form are touched.
func (s *Server) applyPostedIntake(r *http.Request, session *newsroom.Session) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	for _, f := range intakeFields {
		if values, ok := r.PostForm[f.Name]; ok {
			if err := session.SetField(f.Name, strings.Join(values, "\n")); err != nil {
				return err
			}
		}
	}
	for _, person := range session.Snapshot().Intake.Interviewees {
		if name, ok := r.PostForm["name_"+person.ID]; ok {
			if err := session.UpdateInterviewee(person.ID, "name", strings.Join(name, " ")); err != nil {
				return err
			}
		}
		if title, ok := r.PostForm["title_"+person.ID]; ok {
			if err := session.UpdateInterviewee(person.ID, "title", strings.Join(title, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Server) handleFormSave(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := s.applyPostedIntake(r, session); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleFormReset(w http.ResponseWriter, r *http.Request) {
	s.session(w, r).ResetIntake()
	redirectHome(w, r)
}

func (s *Server) handleFormAddInterviewee(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := s.applyPostedIntake(r, session); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session.AddInterviewee()
	redirectHome(w, r)
}

func (s *Server) handleFormRemoveInterviewee(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := s.applyPostedIntake(r, session); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := session.RemoveInterviewee(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	redirectHome(w, r)
}

// handleFormSubmit saves the posted intake and runs the analysis. Failures
// land in the session banner, so the page is shown either way.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := s.applyPostedIntake(r, session); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := session.Submit(r.Context()); err != nil && errors.Is(err, newsroom.ErrBusy) {
		http.Error(w, "Mas Tikon masih bekerja, tunggu sebentar.", http.StatusConflict)
		return
	}
	redirectHome(w, r)
}

func (s *Server) applyPostedSummaries(r *http.Request, session *newsroom.Session) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	for key, values := range r.PostForm {
		raw, ok := strings.CutPrefix(key, "summary_")
		if !ok {
			continue
		}
		index, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		if err := session.UpdateInterviewSummary(index, strings.Join(values, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) handleFormSummaries(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := s.applyPostedSummaries(r, session); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session.SelectTab(newsroom.TabShotList)
	redirectHome(w, r)
}

func (s *Server) handleFormRegenerate(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := s.applyPostedSummaries(r, session); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := session.Regenerate(r.Context()); err != nil && errors.Is(err, newsroom.ErrBusy) {
		http.Error(w, "Mas Tikon masih bekerja, tunggu sebentar.", http.StatusConflict)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleFormTab(w http.ResponseWriter, r *http.Request) {
	tab, err := newsroom.ParseTab(mux.Vars(r)["tab"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.session(w, r).SelectTab(tab)
	redirectHome(w, r)
}

func (s *Server) handleFormCopy(w http.ResponseWriter, r *http.Request) {
	s.session(w, r).CopyScript()
	redirectHome(w, r)
}

func (s *Server) handleFormDismiss(w http.ResponseWriter, r *http.Request) {
	s.session(w, r).DismissError()
	redirectHome(w, r)
}
