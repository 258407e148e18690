package request

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/communitydesk/eventdesk/internal/domain"
)

var errEndBeforeStart = errors.New("event end must be after its start")

type QuestionInput struct {
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	TargetRole string   `json:"targetRole"`
}

type CreateEventRequest struct {
	Name      string          `json:"name"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Location  string          `json:"location"`
	MinTier   string          `json:"minTier"`
	Questions []QuestionInput `json:"questions"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Start, validation.Required),
		validation.Field(&req.End, validation.Required),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.MinTier, validation.In(
			domain.TierBronze, domain.TierSilver, domain.TierGold, domain.TierPlatinum,
		)),
	)
	if err != nil {
		return err
	}

	if !req.End.After(req.Start) {
		return errEndBeforeStart
	}

	for i, q := range req.Questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return nil
}

func validateQuestion(q QuestionInput) error {
	err := validation.ValidateStruct(
		&q,
		validation.Field(&q.Text, validation.Required, validation.Length(1, 200)),
		validation.Field(&q.Type, validation.Required),
		validation.Field(&q.TargetRole, validation.Required, validation.In(
			domain.RoleParticipant, domain.RoleVolunteer,
		)),
	)
	if err != nil {
		return err
	}

	if !domain.ValidQuestionType(q.Type) {
		return fmt.Errorf("invalid question type %q", q.Type)
	}

	if q.Type != domain.QuestionTypeText && len(q.Options) == 0 {
		return fmt.Errorf("%v questions need at least one option", q.Type)
	}

	return nil
}
