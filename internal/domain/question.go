package domain

const (
	QuestionTypeText        = "TEXT"
	QuestionTypeSelect      = "SELECT"
	QuestionTypeMultiSelect = "MULTISELECT"
)

// Question is a registration question attached to an event. TargetRole
// decides which capacity (PARTICIPANT or VOLUNTEER) sees it on the form.
type Question struct {
	ID         uint     `json:"id"`
	EventID    uint     `json:"eventId"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	TargetRole string   `json:"targetRole"`
}

// ValidQuestionType reports whether t is a supported question type.
func ValidQuestionType(t string) bool {
	switch t {
	case QuestionTypeText, QuestionTypeSelect, QuestionTypeMultiSelect:
		return true
	}

	return false
}
