// internals/features/club/divisions/service/division_rank.go
package service

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	divisionModel "brezalfc_backend/internals/features/club/divisions/model"
)

// Orden de presentación de las categorías: cadete < juvenil < senior.
// "sénior", "1a" y "primera" cuentan como senior; lo desconocido va al
// final en orden alfabético.
const (
	rankCadete  = 0
	rankJuvenil = 1
	rankSenior  = 2
	rankUnknown = 99
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldName normaliza a minúsculas sin acentos ("Sénior" -> "senior").
func foldName(name string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(name))
	}
	return folded
}

func DivisionRank(name string) int {
	n := foldName(name)
	switch {
	case strings.Contains(n, "cadete"):
		return rankCadete
	case strings.Contains(n, "juvenil"):
		return rankJuvenil
	case strings.Contains(n, "senior"), strings.Contains(n, "1a"), strings.Contains(n, "primera"):
		return rankSenior
	default:
		return rankUnknown
	}
}

// SortDivisions ordena en sitio por rango y, a igual rango, por nombre
// (comparación byte a byte, estable para los tests).
func SortDivisions(list []divisionModel.DivisionModel) {
	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := DivisionRank(list[i].DivisionName), DivisionRank(list[j].DivisionName)
		if ri != rj {
			return ri < rj
		}
		return list[i].DivisionName < list[j].DivisionName
	})
}
