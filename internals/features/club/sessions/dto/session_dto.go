// internals/features/club/sessions/dto/session_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
)

var validate = validator.New()

type CreateSessionRequest struct {
	Type       string     `json:"type" validate:"required,oneof=training match"`
	DivisionID *uuid.UUID `json:"division_id"`
	StartsAt   time.Time  `json:"starts_at" validate:"required"`
	Location   string     `json:"location" validate:"max=200"`
	Notes      *string    `json:"notes"`
	Rival      *string    `json:"rival" validate:"omitempty,max=200"`
}

func (r *CreateSessionRequest) Validate() map[string][]string {
	if err := validate.Struct(r); err != nil {
		return fieldErrors(err)
	}
	if r.Type == sessionModel.SessionTypeMatch && (r.Rival == nil || strings.TrimSpace(*r.Rival) == "") {
		return map[string][]string{"rival": {"obligatorio en partidos"}}
	}
	return nil
}

func (r *CreateSessionRequest) ToModel() sessionModel.SessionModel {
	return sessionModel.SessionModel{
		SessionType:       r.Type,
		SessionDivisionID: r.DivisionID,
		SessionStartsAt:   r.StartsAt.UTC(),
		SessionLocation:   strings.TrimSpace(r.Location),
		SessionNotes:      r.Notes,
		SessionRival:      r.Rival,
	}
}

// UpdateSessionRequest: parcheo parcial, punteros = "no tocar".
type UpdateSessionRequest struct {
	DivisionID    *uuid.UUID `json:"division_id"`
	ClearDivision bool       `json:"clear_division"`
	StartsAt      *time.Time `json:"starts_at"`
	Location      *string    `json:"location" validate:"omitempty,max=200"`
	Notes         *string    `json:"notes"`
	Rival         *string    `json:"rival" validate:"omitempty,max=200"`
}

func (r *UpdateSessionRequest) Validate() map[string][]string {
	if err := validate.Struct(r); err != nil {
		return fieldErrors(err)
	}
	return nil
}

func (r *UpdateSessionRequest) Apply(s *sessionModel.SessionModel) {
	if r.ClearDivision {
		s.SessionDivisionID = nil
	} else if r.DivisionID != nil {
		s.SessionDivisionID = r.DivisionID
	}
	if r.StartsAt != nil {
		s.SessionStartsAt = r.StartsAt.UTC()
	}
	if r.Location != nil {
		s.SessionLocation = strings.TrimSpace(*r.Location)
	}
	if r.Notes != nil {
		s.SessionNotes = r.Notes
	}
	if r.Rival != nil {
		s.SessionRival = r.Rival
	}
}

type MatchResultRequest struct {
	HomeGoals int `json:"home_goals" validate:"min=0,max=99"`
	AwayGoals int `json:"away_goals" validate:"min=0,max=99"`
}

func (r *MatchResultRequest) Validate() map[string][]string {
	if err := validate.Struct(r); err != nil {
		return fieldErrors(err)
	}
	return nil
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = append(out[strings.ToLower(fe.Field())], "no válido")
		}
		return out
	}
	return map[string][]string{"_": {err.Error()}}
}
