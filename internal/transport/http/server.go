package transporthttp

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mastikon/internal/config"
	"mastikon/internal/newsroom"
)

const sessionCookie = "mastikon_session"

type Server struct {
	sessions   *newsroom.SessionStore
	logger     *slog.Logger
	page       *template.Template
	cookieTTL  time.Duration
	hasAPIKey  bool
	modelLabel string
}

func NewServer(sessions *newsroom.SessionStore, cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		sessions:   sessions,
		logger:     logger,
		page:       mustParsePage(),
		cookieTTL:  cfg.SessionTTL,
		hasAPIKey:  cfg.HasCredential(),
		modelLabel: cfg.GeminiModel,
	}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/swagger/openapi.yaml", serveSwaggerYAML).Methods(http.MethodGet)
	r.HandleFunc("/swagger", serveSwaggerUI).Methods(http.MethodGet)
	r.HandleFunc("/swagger/", serveSwaggerUI).Methods(http.MethodGet)

	// server-rendered page, redirect-after-post
	r.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	r.HandleFunc("/intake", s.handleFormSave).Methods(http.MethodPost)
	r.HandleFunc("/intake/reset", s.handleFormReset).Methods(http.MethodPost)
	r.HandleFunc("/intake/interviewees", s.handleFormAddInterviewee).Methods(http.MethodPost)
	r.HandleFunc("/intake/interviewees/{id}/delete", s.handleFormRemoveInterviewee).Methods(http.MethodPost)
	r.HandleFunc("/analysis", s.handleFormSubmit).Methods(http.MethodPost)
	r.HandleFunc("/analysis/interviews", s.handleFormSummaries).Methods(http.MethodPost)
	r.HandleFunc("/analysis/script", s.handleFormRegenerate).Methods(http.MethodPost)
	r.HandleFunc("/view/tab/{tab}", s.handleFormTab).Methods(http.MethodPost)
	r.HandleFunc("/view/copy", s.handleFormCopy).Methods(http.MethodPost)
	r.HandleFunc("/error/dismiss", s.handleFormDismiss).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/session", s.apiSession).Methods(http.MethodGet)
	api.HandleFunc("/intake", s.apiGetIntake).Methods(http.MethodGet)
	api.HandleFunc("/intake", s.apiReplaceIntake).Methods(http.MethodPut)
	api.HandleFunc("/intake/reset", s.apiResetIntake).Methods(http.MethodPost)
	api.HandleFunc("/intake/fields/{field}", s.apiSetField).Methods(http.MethodPatch)
	api.HandleFunc("/intake/interviewees", s.apiAddInterviewee).Methods(http.MethodPost)
	api.HandleFunc("/intake/interviewees/{id}", s.apiUpdateInterviewee).Methods(http.MethodPatch)
	api.HandleFunc("/intake/interviewees/{id}", s.apiRemoveInterviewee).Methods(http.MethodDelete)
	api.HandleFunc("/analysis", s.apiSubmit).Methods(http.MethodPost)
	api.HandleFunc("/analysis/interviews/{index}/summary", s.apiUpdateSummary).Methods(http.MethodPut)
	api.HandleFunc("/analysis/script", s.apiRegenerate).Methods(http.MethodPost)
	api.HandleFunc("/error", s.apiDismissError).Methods(http.MethodDelete)
	api.HandleFunc("/view/tab", s.apiSelectTab).Methods(http.MethodPut)
	api.HandleFunc("/view/copy", s.apiCopy).Methods(http.MethodPost)

	// wrapped outside the router so preflight requests reach withCORS
	return s.withLogging(withCORS(r))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"configured": s.hasAPIKey,
		"sessions":   s.sessions.Len(),
	})
}

// session resolves the caller's session from its cookie, creating one when
// needed.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *newsroom.Session {
	var id string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		id = cookie.Value
	}

	session, created := s.sessions.GetOrCreate(id)
	if created || id != session.ID() {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    session.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(s.cookieTTL.Seconds()),
		})
	}
	return session
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// statusFor maps domain errors onto HTTP statuses. Anything unrecognised
// came from the model call.
func statusFor(err error) int {
	switch {
	case errors.Is(err, newsroom.ErrMissingCredential):
		return http.StatusServiceUnavailable
	case errors.Is(err, newsroom.ErrBusy), errors.Is(err, newsroom.ErrNoResult):
		return http.StatusConflict
	case errors.Is(err, newsroom.ErrIndexOutOfRange), errors.Is(err, newsroom.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, newsroom.ErrIntervieweeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
