package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"brezalfc_backend/internals/constants"
)

func TestCanMark(t *testing.T) {
	divA := uuid.New()
	divB := uuid.New()

	cases := []struct {
		name            string
		role            string
		sessionDivision *uuid.UUID
		playerDivisions []uuid.UUID
		want            bool
	}{
		{"admin siempre", constants.RoleAdmin, &divA, nil, true},
		{"coach siempre", constants.RoleCoach, &divA, nil, true},
		{"sesión abierta", constants.RolePlayer, nil, nil, true},
		{"jugador de la división", constants.RolePlayer, &divA, []uuid.UUID{divA}, true},
		{"jugador de dos divisiones", constants.RolePlayer, &divB, []uuid.UUID{divA, divB}, true},
		{"jugador de otra división", constants.RolePlayer, &divA, []uuid.UUID{divB}, false},
		{"jugador sin divisiones", constants.RolePlayer, &divA, nil, false},
		{"rol desconocido = player", "becario", &divA, []uuid.UUID{divB}, false},
		{"rol desconocido en abierta", "becario", nil, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanMark(tc.role, tc.sessionDivision, tc.playerDivisions))
		})
	}
}
