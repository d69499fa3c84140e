package entity

// Roles válidos para User. El rol maker propone cambios de inventario
// y el rol checker los aprueba (regla de dos personas; solo se modela el rol).
const (
	RoleAdmin   = "admin"
	RoleMaker   = "maker"
	RoleChecker = "checker"
)

// User representa un usuario autenticable del sistema.
// Se serializa tal cual al local storage de la sesión (nunca incluye password ni token).
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"` // admin, maker, checker
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}
