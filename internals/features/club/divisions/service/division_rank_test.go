package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	divisionModel "brezalfc_backend/internals/features/club/divisions/model"
)

func TestDivisionRank(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"cadete", rankCadete},
		{"Cadete B", rankCadete},
		{"juvenil", rankJuvenil},
		{"JUVENIL A", rankJuvenil},
		{"senior", rankSenior},
		{"Sénior", rankSenior},
		{"1a división", rankSenior},
		{"Primera", rankSenior},
		{"veteranos", rankUnknown},
		{"", rankUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DivisionRank(tc.name), "nombre %q", tc.name)
	}
}

func TestSortDivisions(t *testing.T) {
	list := []divisionModel.DivisionModel{
		{DivisionName: "Veteranos"},
		{DivisionName: "Sénior"},
		{DivisionName: "Cadete"},
		{DivisionName: "Alevin"},
		{DivisionName: "Juvenil"},
	}
	SortDivisions(list)

	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.DivisionName
	}
	// desconocidos al final, en orden alfabético
	assert.Equal(t, []string{"Cadete", "Juvenil", "Sénior", "Alevin", "Veteranos"}, names)
}
