package newsroom

// Interviewee is a source the trainee plans to interview.
type Interviewee struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
}

// NewsIntake holds the raw news-gathering notes entered by the trainee.
type NewsIntake struct {
	Topic        string        `json:"topic" yaml:"topic"`
	EventType    string        `json:"eventType" yaml:"eventType"`
	Location     string        `json:"location" yaml:"location"`
	DateTime     string        `json:"dateTime" yaml:"dateTime"`
	Organizer    string        `json:"organizer" yaml:"organizer"`
	KeyFigures   string        `json:"keyFigures" yaml:"keyFigures"`
	What         string        `json:"what" yaml:"what"`
	Who          string        `json:"who" yaml:"who"`
	When         string        `json:"when" yaml:"when"`
	Where        string        `json:"where" yaml:"where"`
	Why          string        `json:"why" yaml:"why"`
	How          string        `json:"how" yaml:"how"`
	Interviewees []Interviewee `json:"interviewees" yaml:"interviewees"`
}

// Clone returns a copy that shares no slices with n.
func (n NewsIntake) Clone() NewsIntake {
	out := n
	out.Interviewees = append([]Interviewee{}, n.Interviewees...)
	return out
}

// EditorialAnalysis is the angle assessment produced by the model.
type EditorialAnalysis struct {
	NewsValue      string `json:"newsValue"`
	GeneratedAngle string `json:"generatedAngle"`
	AngleReasoning string `json:"angleReasoning"`
}

// InterviewGuide lists suggested questions for one source. AnswerSummary is
// filled in by the trainee after the interview.
type InterviewGuide struct {
	Name               string   `json:"name"`
	Title              string   `json:"title"`
	SuggestedQuestions []string `json:"suggestedQuestions"`
	AnswerSummary      string   `json:"answerSummary,omitempty"`
}

// ShotList groups the shots required during coverage.
type ShotList struct {
	Establishing []string         `json:"establishing"`
	Activities   []string         `json:"activities"`
	CloseUps     []string         `json:"closeUps"`
	Cutaways     []string         `json:"cutaways"`
	Interviews   []InterviewGuide `json:"interviews"`
	NaturalSound []string         `json:"naturalSound"`
}

// CharacterGenerators are the on-screen text overlays. CG1 names a speaker,
// CG3 locates the scene.
type CharacterGenerators struct {
	CG1 []string `json:"cg1"`
	CG3 string   `json:"cg3"`
}

// TvScript is a broadcast script. FullText is the copy-ready rendering.
type TvScript struct {
	Slug        string              `json:"slug"`
	AnchorIntro string              `json:"anchorIntro"`
	Body        string              `json:"body"`
	CGs         CharacterGenerators `json:"cgs"`
	FullText    string              `json:"fullText"`
}

// Clone returns a copy that shares no slices with s.
func (s TvScript) Clone() TvScript {
	out := s
	out.CGs.CG1 = cloneStrings(s.CGs.CG1)
	return out
}

// AnalysisResult is the structured package returned by the first generation.
type AnalysisResult struct {
	MasTikonAnalysis EditorialAnalysis `json:"masTikonAnalysis"`
	FieldGuide       []string          `json:"fieldGuide"`
	ShotList         ShotList          `json:"shotList"`
	TechnicalGuide   []string          `json:"technicalGuide"`
	TvScript         TvScript          `json:"tvScript"`
	Feedback         string            `json:"feedback"`
}

// Clone returns a deep copy of r.
func (r AnalysisResult) Clone() AnalysisResult {
	out := r
	out.FieldGuide = cloneStrings(r.FieldGuide)
	out.TechnicalGuide = cloneStrings(r.TechnicalGuide)
	out.ShotList = ShotList{
		Establishing: cloneStrings(r.ShotList.Establishing),
		Activities:   cloneStrings(r.ShotList.Activities),
		CloseUps:     cloneStrings(r.ShotList.CloseUps),
		Cutaways:     cloneStrings(r.ShotList.Cutaways),
		NaturalSound: cloneStrings(r.ShotList.NaturalSound),
	}
	if r.ShotList.Interviews != nil {
		out.ShotList.Interviews = make([]InterviewGuide, len(r.ShotList.Interviews))
		for i, guide := range r.ShotList.Interviews {
			guide.SuggestedQuestions = cloneStrings(guide.SuggestedQuestions)
			out.ShotList.Interviews[i] = guide
		}
	}
	out.TvScript = r.TvScript.Clone()
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string{}, values...)
}
