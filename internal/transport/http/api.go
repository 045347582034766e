package transporthttp

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mastikon/internal/newsroom"
)

func decodeBody(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func (s *Server) apiSession(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session(w, r).Snapshot())
}

func (s *Server) apiGetIntake(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session(w, r).Snapshot().Intake)
}

func (s *Server) apiReplaceIntake(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)

	var intake newsroom.NewsIntake
	if err := decodeBody(r, &intake); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	seen := make(map[string]struct{}, len(intake.Interviewees))
	for _, person := range intake.Interviewees {
		if person.ID == "" {
			s.writeError(w, http.StatusBadRequest, "interviewee id is required")
			return
		}
		if _, dup := seen[person.ID]; dup {
			s.writeError(w, http.StatusBadRequest, "interviewee ids must be unique")
			return
		}
		seen[person.ID] = struct{}{}
	}

	session.ReplaceIntake(intake)
	s.writeJSON(w, http.StatusOK, session.Snapshot().Intake)
}

func (s *Server) apiResetIntake(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	session.ResetIntake()
	s.writeJSON(w, http.StatusOK, session.Snapshot().Intake)
}

func (s *Server) apiSetField(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)

	var payload struct {
		Value string `json:"value"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := session.SetField(mux.Vars(r)["field"], payload.Value); err != nil {
		s.writeError(w, statusFor(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, session.Snapshot().Intake)
}

func (s *Server) apiAddInterviewee(w http.ResponseWriter, r *http.Request) {
	person := s.session(w, r).AddInterviewee()
	s.writeJSON(w, http.StatusCreated, person)
}

func (s *Server) apiUpdateInterviewee(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	id := mux.Vars(r)["id"]

	var payload struct {
		Name  *string `json:"name"`
		Title *string `json:"title"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Name != nil {
		if err := session.UpdateInterviewee(id, "name", *payload.Name); err != nil {
			s.writeError(w, statusFor(err), err.Error())
			return
		}
	}
	if payload.Title != nil {
		if err := session.UpdateInterviewee(id, "title", *payload.Title); err != nil {
			s.writeError(w, statusFor(err), err.Error())
			return
		}
	}
	s.writeJSON(w, http.StatusOK, session.Snapshot().Intake)
}

func (s *Server) apiRemoveInterviewee(w http.ResponseWriter, r *http.Request) {
	if err := s.session(w, r).RemoveInterviewee(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) apiSubmit(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := session.Submit(r.Context()); err != nil {
		s.writeSessionError(w, session, err)
		return
	}
	s.writeJSON(w, http.StatusOK, session.Snapshot())
}

func (s *Server) apiRegenerate(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if err := session.Regenerate(r.Context()); err != nil {
		s.writeSessionError(w, session, err)
		return
	}
	s.writeJSON(w, http.StatusOK, session.Snapshot())
}

// writeSessionError prefers the banner message the session recorded over the
// internal error text.
func (s *Server) writeSessionError(w http.ResponseWriter, session *newsroom.Session, err error) {
	message := session.Snapshot().Error
	if message == "" {
		message = err.Error()
	}
	s.writeError(w, statusFor(err), message)
}

func (s *Server) apiUpdateSummary(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}
	var payload struct {
		AnswerSummary string `json:"answerSummary"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := session.UpdateInterviewSummary(index, payload.AnswerSummary); err != nil {
		s.writeError(w, statusFor(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, session.Snapshot())
}

func (s *Server) apiDismissError(w http.ResponseWriter, r *http.Request) {
	s.session(w, r).DismissError()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) apiSelectTab(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)

	var payload struct {
		Tab string `json:"tab"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	tab, err := newsroom.ParseTab(payload.Tab)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	session.SelectTab(tab)
	s.writeJSON(w, http.StatusOK, session.Snapshot().View)
}

func (s *Server) apiCopy(w http.ResponseWriter, r *http.Request) {
	text, ok := s.session(w, r).CopyScript()
	s.writeJSON(w, http.StatusOK, map[string]any{"copied": ok, "text": text})
}
