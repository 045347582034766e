package newsroom

import (
	"fmt"
	"strings"
	"time"
)

// Tab is one of the mutually exclusive result views.
type Tab string

const (
	TabAnalysis Tab = "analysis"
	TabGuide    Tab = "guide"
	TabShotList Tab = "shotlist"
	TabScript   Tab = "script"
)

// CopyConfirmation is how long the "copied" flag stays up.
const CopyConfirmation = 2 * time.Second

// Tabs lists the result views in display order.
func Tabs() []Tab {
	return []Tab{TabAnalysis, TabGuide, TabShotList, TabScript}
}

// ParseTab validates a tab name.
func ParseTab(name string) (Tab, error) {
	for _, tab := range Tabs() {
		if string(tab) == name {
			return tab, nil
		}
	}
	return "", fmt.Errorf("newsroom: unknown tab %q", name)
}

// Presenter holds view state over the session's result. It never stores the
// result itself.
type Presenter struct {
	active       Tab
	regenerating bool
	copiedUntil  time.Time
	clipboard    string
}

// NewPresenter starts on the angle analysis tab.
func NewPresenter() *Presenter {
	return &Presenter{active: TabAnalysis}
}

// PresenterView is a snapshot of the view state for rendering.
type PresenterView struct {
	ActiveTab Tab    `json:"activeTab"`
	Copied    bool   `json:"copied"`
	Clipboard string `json:"clipboard,omitempty"`
}

// View snapshots the view state at now.
func (p *Presenter) View(now time.Time) PresenterView {
	return PresenterView{ActiveTab: p.active, Copied: p.Copied(now), Clipboard: p.clipboard}
}

// Active returns the selected tab.
func (p *Presenter) Active() Tab {
	return p.active
}

// Select switches to the given tab.
func (p *Presenter) Select(tab Tab) {
	p.active = tab
}

// ResultArrived resets the view for a freshly generated result.
func (p *Presenter) ResultArrived() {
	p.active = TabAnalysis
	p.copiedUntil = time.Time{}
}

// ObserveRegenerating records the regeneration flag and jumps to the script
// tab when it falls from true to false.
func (p *Presenter) ObserveRegenerating(regenerating bool) {
	if p.regenerating && !regenerating {
		p.active = TabScript
	}
	p.regenerating = regenerating
}

// Copy records the script text as copied and raises the confirmation flag.
// Without a result or script text it does nothing.
func (p *Presenter) Copy(result *AnalysisResult, now time.Time) (string, bool) {
	if result == nil || result.TvScript.FullText == "" {
		return "", false
	}
	p.clipboard = result.TvScript.FullText
	p.copiedUntil = now.Add(CopyConfirmation)
	return p.clipboard, true
}

// Copied reports whether the confirmation flag is still up at now.
func (p *Presenter) Copied(now time.Time) bool {
	return now.Before(p.copiedUntil)
}

// CanRegenerate reports whether at least one interview has a non-blank
// summary. It is evaluated on every render.
func CanRegenerate(result *AnalysisResult) bool {
	if result == nil {
		return false
	}
	for _, guide := range result.ShotList.Interviews {
		if strings.TrimSpace(guide.AnswerSummary) != "" {
			return true
		}
	}
	return false
}
