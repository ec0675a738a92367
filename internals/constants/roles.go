package constants

import "fmt"

// Roles del sistema (vienen del token, emitidos por el proveedor de identidad)
const (
	RoleCoordinator = "COORDINATOR"
	RoleProfessor   = "PROFESSOR"
	RoleStudent     = "STUDENT"
)

// Mensajes de error por rol
const (
	ErrOnlyGestoresCanAccess = "Solo coordinadores o profesores pueden acceder a %s."
)

func RoleErrorGestor(feature string) string {
	return fmt.Sprintf(ErrOnlyGestoresCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// Gestores: pueden crear convocatorias, decidir postulaciones y
	// administrar la configuración de selección.
	Gestores = []string{
		RoleCoordinator,
		RoleProfessor,
	}
)
