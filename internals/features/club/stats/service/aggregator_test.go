package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceModel "brezalfc_backend/internals/features/club/attendance/model"
)

func records(playerID uuid.UUID, statuses ...string) []Record {
	out := make([]Record, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Record{PlayerID: playerID, Status: s})
	}
	return out
}

func TestAggregatePercentageRounds(t *testing.T) {
	p := uuid.New()
	stats, totals := Aggregate(
		records(p,
			attendanceModel.StatusGoing,
			attendanceModel.StatusGoing,
			attendanceModel.StatusNotGoing,
		),
		map[uuid.UUID]string{p: "Mario Santos"},
	)
	require.Len(t, stats, 1)

	// 2 de 3 = 66,67 -> 67
	assert.Equal(t, 67, stats[0].Pct)
	assert.Equal(t, 2, stats[0].Going)
	assert.Equal(t, 1, stats[0].NotGoing)
	assert.Equal(t, 3, stats[0].TotalMarked)
	assert.Equal(t, "Mario Santos", stats[0].DisplayName)

	assert.Equal(t, TeamTotals{Going: 2, NotGoing: 1, Pending: 0, TotalMarked: 3, Players: 1}, totals)
}

func TestAggregateRanking(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	names := map[uuid.UUID]string{a: "Ana", b: "Berta", c: "Carmen"}

	var recs []Record
	// Ana: 1/2 = 50
	recs = append(recs, records(a, attendanceModel.StatusGoing, attendanceModel.StatusNotGoing)...)
	// Berta: 1/1 = 100
	recs = append(recs, records(b, attendanceModel.StatusGoing)...)
	// Carmen: 2/2 = 100, más asistencias que Berta
	recs = append(recs, records(c, attendanceModel.StatusGoing, attendanceModel.StatusGoing)...)

	stats, totals := Aggregate(recs, names)
	require.Len(t, stats, 3)

	// pct desc, going desc: Carmen, Berta, Ana
	assert.Equal(t, "Carmen", stats[0].DisplayName)
	assert.Equal(t, "Berta", stats[1].DisplayName)
	assert.Equal(t, "Ana", stats[2].DisplayName)

	assert.Equal(t, 3, totals.Players)
	assert.Equal(t, 4, totals.Going)
	assert.Equal(t, 5, totals.TotalMarked)
}

func TestAggregateNameTieBreak(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{a: "Zoe", b: "Alba"}

	recs := append(records(a, attendanceModel.StatusGoing), records(b, attendanceModel.StatusGoing)...)
	stats, _ := Aggregate(recs, names)
	require.Len(t, stats, 2)

	// mismo pct y mismas asistencias: por nombre
	assert.Equal(t, "Alba", stats[0].DisplayName)
	assert.Equal(t, "Zoe", stats[1].DisplayName)
}

func TestAggregatePendingAndUnknown(t *testing.T) {
	p := uuid.New()
	recs := records(p,
		attendanceModel.StatusPending,
		attendanceModel.StatusGoing,
		"estado-raro", // se ignora sin contar
	)
	stats, totals := Aggregate(recs, map[uuid.UUID]string{p: "Iker"})
	require.Len(t, stats, 1)

	assert.Equal(t, 1, stats[0].Pending)
	assert.Equal(t, 2, stats[0].TotalMarked)
	assert.Equal(t, 50, stats[0].Pct)
	assert.Equal(t, 2, totals.TotalMarked)
}

func TestAggregateEmptyAndMissingName(t *testing.T) {
	stats, totals := Aggregate(nil, nil)
	assert.Empty(t, stats)
	assert.Equal(t, TeamTotals{}, totals)

	// sin nombre en el mapa: id corto
	p := uuid.New()
	stats, _ = Aggregate(records(p, attendanceModel.StatusGoing), nil)
	require.Len(t, stats, 1)
	assert.Equal(t, p.String()[:8], stats[0].DisplayName)
}
