package newsroom

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// User-facing messages shown in the error banner.
const (
	MsgMissingCredential = "API Key belum dikonfigurasi. Harap setel GEMINI_API_KEY."
	MsgAnalysisFailed    = "Gagal menghubungi Mas Tikon. Cek koneksi atau coba lagi nanti."
	MsgScriptFailed      = "Gagal memperbarui naskah dengan SOT."
)

// Status is the coarse state of a session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

// Analyzer is the generation capability a session depends on.
type Analyzer interface {
	Configured() bool
	GenerateEditorialAnalysis(ctx context.Context, intake NewsIntake) (AnalysisResult, error)
	RegenerateScriptWithSOT(ctx context.Context, script TvScript, interviews []InterviewGuide, intake NewsIntake) (TvScript, error)
}

// Session is the application controller for one browser. It owns the live
// intake and at most one live result. Model calls run outside the lock; a
// request token discards responses that are no longer current.
type Session struct {
	mu sync.Mutex

	id        string
	analyzer  Analyzer
	form      *Form
	presenter *Presenter
	logger    *slog.Logger
	now       func() time.Time

	result       *AnalysisResult
	generating   bool
	regenerating bool
	errMsg       string
	token        uint64
	lastSeen     time.Time
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithClock overrides the time source (useful for tests).
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session holding the default intake.
func NewSession(id string, analyzer Analyzer, opts ...SessionOption) *Session {
	s := &Session{
		id:        id,
		analyzer:  analyzer,
		form:      NewForm(DefaultIntake()),
		presenter: NewPresenter(),
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", id)
	s.lastSeen = s.now()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	ID            string          `json:"id"`
	Status        Status          `json:"status"`
	Intake        NewsIntake      `json:"intake"`
	IntakeVersion uint64          `json:"intakeVersion"`
	Result        *AnalysisResult `json:"result"`
	Generating    bool            `json:"generating"`
	Regenerating  bool            `json:"regenerating"`
	Error         string          `json:"error,omitempty"`
	View          PresenterView   `json:"view"`
	CanRegenerate bool            `json:"canRegenerate"`
	Configured    bool            `json:"configured"`
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            s.id,
		Status:        s.statusLocked(),
		Intake:        s.form.Intake(),
		IntakeVersion: s.form.Version(),
		Generating:    s.generating,
		Regenerating:  s.regenerating,
		Error:         s.errMsg,
		View:          s.presenter.View(s.now()),
		CanRegenerate: CanRegenerate(s.result),
		Configured:    s.configured(),
	}
	if s.result != nil {
		result := s.result.Clone()
		snap.Result = &result
	}
	return snap
}

func (s *Session) statusLocked() Status {
	switch {
	case s.generating:
		return StatusGenerating
	case s.errMsg != "":
		return StatusError
	case s.result != nil:
		return StatusReady
	default:
		return StatusIdle
	}
}

func (s *Session) configured() bool {
	return s.analyzer != nil && s.analyzer.Configured()
}

// LastSeen reports when the session was last touched.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Touch marks the session as in use.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

// Submit runs the editorial analysis for the current intake.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.configured() {
		s.errMsg = MsgMissingCredential
		s.mu.Unlock()
		return ErrMissingCredential
	}
	if s.generating || s.regenerating {
		s.mu.Unlock()
		return ErrBusy
	}
	s.generating = true
	s.errMsg = ""
	s.result = nil
	s.token++
	token := s.token
	intake := s.form.Intake()
	s.mu.Unlock()

	result, err := s.analyzer.GenerateEditorialAnalysis(ctx, intake)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		s.logger.Warn("discarding stale analysis response", "token", token)
		return nil
	}
	s.generating = false
	if err != nil {
		s.logger.Error("editorial analysis failed", "error", err)
		s.errMsg = MsgAnalysisFailed
		return err
	}
	s.result = &result
	s.presenter.ResultArrived()
	s.logger.Info("editorial analysis ready", "interviews", len(result.ShotList.Interviews))
	return nil
}

// Regenerate rewrites the script with the interview summaries. A failure
// keeps the previous result.
func (s *Session) Regenerate(ctx context.Context) error {
	s.mu.Lock()
	if s.result == nil {
		s.mu.Unlock()
		return ErrNoResult
	}
	if !s.configured() {
		s.errMsg = MsgMissingCredential
		s.mu.Unlock()
		return ErrMissingCredential
	}
	if s.generating || s.regenerating {
		s.mu.Unlock()
		return ErrBusy
	}
	s.regenerating = true
	s.presenter.ObserveRegenerating(true)
	token := s.token
	current := s.result.Clone()
	intake := s.form.Intake()
	s.mu.Unlock()

	script, err := s.analyzer.RegenerateScriptWithSOT(ctx, current.TvScript, current.ShotList.Interviews, intake)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.regenerating = false
	s.presenter.ObserveRegenerating(false)
	if token != s.token || s.result == nil {
		s.logger.Warn("discarding stale script response", "token", token)
		return nil
	}
	if err != nil {
		s.logger.Error("script regeneration failed", "error", err)
		s.errMsg = MsgScriptFailed
		return err
	}
	s.result.TvScript = script.Clone()
	return nil
}

// UpdateInterviewSummary sets the answer summary of one interview guide.
func (s *Session) UpdateInterviewSummary(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return ErrNoResult
	}
	if index < 0 || index >= len(s.result.ShotList.Interviews) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	interviews := append([]InterviewGuide{}, s.result.ShotList.Interviews...)
	interviews[index].AnswerSummary = text
	s.result.ShotList.Interviews = interviews
	return nil
}

// DismissError clears the error banner.
func (s *Session) DismissError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// SelectTab switches the result view.
func (s *Session) SelectTab(tab Tab) {
	s.mu.Lock()
	s.presenter.Select(tab)
	s.mu.Unlock()
}

// CopyScript returns the script text for the clipboard and raises the
// confirmation flag. ok is false when there is nothing to copy.
func (s *Session) CopyScript() (text string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presenter.Copy(s.result, s.now())
}

// SetField updates one intake field.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.SetField(name, value)
}

// ReplaceIntake installs a whole intake.
func (s *Session) ReplaceIntake(intake NewsIntake) {
	s.mu.Lock()
	s.form.Replace(intake)
	s.mu.Unlock()
}

// ResetIntake restores the sample intake.
func (s *Session) ResetIntake() {
	s.mu.Lock()
	s.form.Reset()
	s.mu.Unlock()
}

// AddInterviewee appends a blank interviewee.
func (s *Session) AddInterviewee() Interviewee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.AddInterviewee()
}

// RemoveInterviewee removes an interviewee by id.
func (s *Session) RemoveInterviewee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.RemoveInterviewee(id)
}

// UpdateInterviewee sets the name or title of an interviewee.
func (s *Session) UpdateInterviewee(id, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.UpdateInterviewee(id, field, value)
}
