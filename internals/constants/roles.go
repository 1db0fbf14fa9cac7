package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleAdmin    = "admin"
	RoleTeacher  = "teacher"
	RoleInternal = "internal"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyInternalCanAccess = "❌ Hanya admin atau service internal yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorInternal(feature string) string {
	return fmt.Sprintf(ErrOnlyInternalCanAccess, feature)
}
