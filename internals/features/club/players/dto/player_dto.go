// internals/features/club/players/dto/player_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	playerModel "brezalfc_backend/internals/features/club/players/model"
)

var validate = validator.New()

/* ===============================
   Requests
=================================*/

// FichaUpdateRequest: parcheo parcial de la ficha. Punteros = "no tocar".
type FichaUpdateRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName     *string `json:"last_name"  validate:"omitempty,max=100"`
	JerseyNumber *int    `json:"jersey_number" validate:"omitempty,min=0,max=99"`
	Position     *string `json:"position" validate:"omitempty,max=50"`
	BirthDate    *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *FichaUpdateRequest) Validate() map[string][]string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	out := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = append(out[strings.ToLower(fe.Field())], "no válido")
		}
		return out
	}
	return map[string][]string{"_": {err.Error()}}
}

// Apply vuelca los campos presentes sobre el modelo.
func (r *FichaUpdateRequest) Apply(p *playerModel.PlayerModel) {
	if r.FirstName != nil {
		p.PlayerFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		p.PlayerLastName = strings.TrimSpace(*r.LastName)
	}
	if r.JerseyNumber != nil {
		p.PlayerJerseyNumber = r.JerseyNumber
	}
	if r.Position != nil {
		pos := strings.TrimSpace(*r.Position)
		if pos == "" {
			p.PlayerPosition = nil
		} else {
			p.PlayerPosition = &pos
		}
	}
	if r.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.BirthDate); err == nil {
			d := datatypes.Date(t)
			p.PlayerBirthDate = &d
		}
	}
}

/* ===============================
   Responses
=================================*/

type PlayerResponse struct {
	PlayerID     uuid.UUID       `json:"player_id"`
	UserID       uuid.UUID       `json:"user_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	DisplayName  string          `json:"display_name"`
	JerseyNumber *int            `json:"jersey_number,omitempty"`
	Position     *string         `json:"position,omitempty"`
	BirthDate    *datatypes.Date `json:"birth_date,omitempty"`
	PhotoURL     *string         `json:"photo_url,omitempty"`
}

func ToPlayerResponse(p *playerModel.PlayerModel) PlayerResponse {
	return PlayerResponse{
		PlayerID:     p.PlayerID,
		UserID:       p.PlayerUserID,
		FirstName:    p.PlayerFirstName,
		LastName:     p.PlayerLastName,
		DisplayName:  p.DisplayName(),
		JerseyNumber: p.PlayerJerseyNumber,
		Position:     p.PlayerPosition,
		BirthDate:    p.PlayerBirthDate,
		PhotoURL:     p.PlayerPhotoURL,
	}
}

func ToPlayerResponses(list []playerModel.PlayerModel) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(list))
	for i := range list {
		out = append(out, ToPlayerResponse(&list[i]))
	}
	return out
}
