// Package wizard implements the five-step guide-registration flow: the form
// draft, the per-step validator, the step controller, and the multipart
// submission encoder. The draft lives only in memory; it is created empty
// when the flow opens and discarded on close or successful submit.
package wizard

import "github.com/google/uuid"

// FileField is a binary form field: the original filename plus its bytes.
type FileField struct {
	Name    string
	Content []byte
}

// IsSet reports whether a file was actually attached.
func (f *FileField) IsSet() bool {
	return f != nil && len(f.Content) > 0
}

// Availability is the seven per-day flags from the availability step.
type Availability struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// Reference is one of the two reference contacts collected on the review step.
type Reference struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// RegistrationDraft is the field store for the in-progress guide
// application. Multi-select fields hold ordered string sets mutated through
// ToggleValue; composite fields are JSON-encoded at submit time.
type RegistrationDraft struct {
	ID string

	// Step 1: identity.
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	NationalID string
	BirthDate  string // YYYY-MM-DD
	Address    string

	// Step 2: professional profile.
	Experience      string
	Languages       []string
	Specializations []string
	Regions         []string
	TourTypes       []string
	Availability    Availability

	// Step 3: pricing. Kept as entered; only presence and numeric form are
	// checked client-side, bounds are the backend's concern.
	HourlyRate   string
	FullDayRate  string
	MultiDayRate string

	// Step 4: documents.
	ProfilePhoto   *FileField
	IDPhoto        *FileField
	Certifications []FileField

	// Step 5: review.
	SocialMedia   map[string]string
	References    [2]Reference
	TermsAccepted bool
}

// NewDraft returns an empty draft with a fresh ID.
func NewDraft() *RegistrationDraft {
	return &RegistrationDraft{
		ID:          uuid.NewString(),
		SocialMedia: make(map[string]string),
	}
}

// ToggleValue toggles membership of v in an ordered string set: if v is
// present it is removed, otherwise it is appended. Duplicates already in the
// input are collapsed to their first occurrence, and first-seen order is
// preserved. Toggling the same value twice returns the original contents.
func ToggleValue(values []string, v string) []string {
	out := make([]string, 0, len(values)+1)
	seen := make(map[string]bool, len(values))
	found := false

	for _, item := range values {
		if seen[item] {
			continue
		}
		seen[item] = true
		if item == v {
			found = true
			continue
		}
		out = append(out, item)
	}

	if !found {
		out = append(out, v)
	}
	return out
}
