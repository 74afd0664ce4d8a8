// internals/features/club/attendance/service/roster_resolver.go
package service

import (
	"github.com/google/uuid"

	"brezalfc_backend/internals/constants"
)

// CanMark decide si un rol puede marcar asistencia en una sesión. Es una
// función pura y total: cualquier combinación de entradas tiene
// respuesta, sin tocar la base de datos.
//
//   - admin y coach marcan siempre
//   - división NULL = sesión abierta, cualquier jugador marca
//   - resto: sólo si la división de la sesión está entre las del jugador
//
// Un rol desconocido se trata como player: ante la duda, la puerta cerrada.
func CanMark(role string, sessionDivisionID *uuid.UUID, playerDivisionIDs []uuid.UUID) bool {
	if constants.IsStaff(role) {
		return true
	}
	if sessionDivisionID == nil {
		return true
	}
	for _, id := range playerDivisionIDs {
		if id == *sessionDivisionID {
			return true
		}
	}
	return false
}
