package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RolePlayer = "player"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess = "🚫 Solo admin o coach puede acceder a %s."
	ErrOnlyAdminCanAccess = "🚫 Solo admin puede acceder a %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoach,
		RolePlayer,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleCoach,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsStaff(role string) bool {
	return role == RoleAdmin || role == RoleCoach
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
