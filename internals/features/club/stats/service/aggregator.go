// internals/features/club/stats/service/aggregator.go
package service

import (
	"math"
	"sort"

	"github.com/google/uuid"

	attendanceModel "brezalfc_backend/internals/features/club/attendance/model"
)

// Record es la entrada mínima del agregador: a quién y qué respondió.
type Record struct {
	PlayerID uuid.UUID
	Status   string
}

type PlayerStat struct {
	PlayerID    uuid.UUID `json:"player_id"`
	DisplayName string    `json:"display_name"`
	Going       int       `json:"going"`
	NotGoing    int       `json:"not_going"`
	Pending     int       `json:"pending"`
	TotalMarked int       `json:"total_marked"`
	Pct         int       `json:"pct"`
}

type TeamTotals struct {
	Going       int `json:"going"`
	NotGoing    int `json:"not_going"`
	Pending     int `json:"pending"`
	TotalMarked int `json:"total_marked"`
	Players     int `json:"players"`
}

// Aggregate calcula las estadísticas por jugador sobre las respuestas
// registradas. Es una función pura: los jugadores sin ninguna respuesta
// simplemente no aparecen.
//
// pct = round(going / total * 100), con total mínimo 1 para no dividir
// por cero. El ranking ordena por pct desc, luego going desc y, de
// postre, nombre ascendente (comparación byte a byte).
func Aggregate(records []Record, names map[uuid.UUID]string) ([]PlayerStat, TeamTotals) {
	byPlayer := map[uuid.UUID]*PlayerStat{}
	totals := TeamTotals{}

	for _, r := range records {
		st := byPlayer[r.PlayerID]
		if st == nil {
			st = &PlayerStat{PlayerID: r.PlayerID, DisplayName: names[r.PlayerID]}
			if st.DisplayName == "" {
				id := r.PlayerID.String()
				st.DisplayName = id[:8]
			}
			byPlayer[r.PlayerID] = st
		}
		switch r.Status {
		case attendanceModel.StatusGoing:
			st.Going++
			totals.Going++
		case attendanceModel.StatusNotGoing:
			st.NotGoing++
			totals.NotGoing++
		case attendanceModel.StatusPending:
			st.Pending++
			totals.Pending++
		default:
			continue
		}
		st.TotalMarked++
		totals.TotalMarked++
	}

	out := make([]PlayerStat, 0, len(byPlayer))
	for _, st := range byPlayer {
		total := st.TotalMarked
		if total < 1 {
			total = 1
		}
		st.Pct = int(math.Round(float64(st.Going) / float64(total) * 100))
		out = append(out, *st)
	}
	totals.Players = len(out)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Pct != out[j].Pct {
			return out[i].Pct > out[j].Pct
		}
		if out[i].Going != out[j].Going {
			return out[i].Going > out[j].Going
		}
		return out[i].DisplayName < out[j].DisplayName
	})
	return out, totals
}
