package newsroom

import (
	"fmt"

	"github.com/google/uuid"
)

// Form owns the editable intake. Every mutation installs a fresh NewsIntake
// value; previously returned values are never modified. Form is not safe for
// concurrent use; Session serialises access.
type Form struct {
	intake  NewsIntake
	version uint64
	newID   func() string
}

// NewForm starts a form from the given intake.
func NewForm(initial NewsIntake) *Form {
	return &Form{intake: initial.Clone(), newID: timestampID}
}

// timestampID returns a UUIDv7, whose leading bits are the creation time.
func timestampID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Intake returns the current intake.
func (f *Form) Intake() NewsIntake {
	return f.intake.Clone()
}

// Version increments on every successful mutation.
func (f *Form) Version() uint64 {
	return f.version
}

func (f *Form) commit(next NewsIntake) {
	f.intake = next
	f.version++
}

// Replace installs a whole intake.
func (f *Form) Replace(intake NewsIntake) {
	f.commit(intake.Clone())
}

// Reset restores the default intake.
func (f *Form) Reset() {
	f.commit(DefaultIntake())
}

// SetField updates one scalar field, keyed by its JSON name.
func (f *Form) SetField(name, value string) error {
	next := f.intake.Clone()
	switch name {
	case "topic":
		next.Topic = value
	case "eventType":
		next.EventType = value
	case "location":
		next.Location = value
	case "dateTime":
		next.DateTime = value
	case "organizer":
		next.Organizer = value
	case "keyFigures":
		next.KeyFigures = value
	case "what":
		next.What = value
	case "who":
		next.Who = value
	case "when":
		next.When = value
	case "where":
		next.Where = value
	case "why":
		next.Why = value
	case "how":
		next.How = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.commit(next)
	return nil
}

// AddInterviewee appends a blank interviewee and returns it.
func (f *Form) AddInterviewee() Interviewee {
	id := f.newID()
	for f.indexOf(id) >= 0 {
		id = f.newID()
	}
	person := Interviewee{ID: id}

	next := f.intake.Clone()
	next.Interviewees = append(next.Interviewees, person)
	f.commit(next)
	return person
}

// RemoveInterviewee drops the interviewee with the given id, keeping the
// order of the others.
func (f *Form) RemoveInterviewee(id string) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrIntervieweeNotFound, id)
	}

	next := f.intake
	next.Interviewees = make([]Interviewee, 0, len(f.intake.Interviewees)-1)
	next.Interviewees = append(next.Interviewees, f.intake.Interviewees[:idx]...)
	next.Interviewees = append(next.Interviewees, f.intake.Interviewees[idx+1:]...)
	f.commit(next)
	return nil
}

// UpdateInterviewee sets the name or title of one interviewee.
func (f *Form) UpdateInterviewee(id, field, value string) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrIntervieweeNotFound, id)
	}

	next := f.intake.Clone()
	switch field {
	case "name":
		next.Interviewees[idx].Name = value
	case "title":
		next.Interviewees[idx].Title = value
	default:
		return fmt.Errorf("%w: interviewee %q", ErrUnknownField, field)
	}
	f.commit(next)
	return nil
}

func (f *Form) indexOf(id string) int {
	for i, person := range f.intake.Interviewees {
		if person.ID == id {
			return i
		}
	}
	return -1
}
