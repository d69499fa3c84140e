package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// CredentialVerifier verifica credenciales y devuelve el usuario si son
// válidas, o nil si no lo son. El store de sesión no conoce ninguna tabla de
// credenciales: se le inyecta este colaborador.
type CredentialVerifier interface {
	Verify(username, password string) *entity.User
}

// demoPassword contraseña compartida de las identidades demo.
const demoPassword = "password"

type demoAccount struct {
	user entity.User
	hash []byte
}

// DemoVerifier verificador con las tres identidades demo (admin, maker,
// checker). Las contraseñas se guardan como hash bcrypt: el binario no
// contiene la credencial en claro una vez construido. Es un sustituto de un
// verificador real y no distingue usuario desconocido de contraseña errónea.
type DemoVerifier struct {
	accounts map[string]demoAccount
}

// NewDemoVerifier construye el verificador demo.
func NewDemoVerifier() *DemoVerifier {
	users := []entity.User{
		{
			ID:       "1",
			Username: "admin",
			Email:    "admin@emart.com",
			Role:     entity.RoleAdmin,
			Name:     "System Administrator",
		},
		{
			ID:       "2",
			Username: "maker",
			Email:    "maker@emart.com",
			Role:     entity.RoleMaker,
			Name:     "Inventory Maker",
		},
		{
			ID:       "3",
			Username: "checker",
			Email:    "checker@emart.com",
			Role:     entity.RoleChecker,
			Name:     "Inventory Checker",
		},
	}

	accounts := make(map[string]demoAccount, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
		if err != nil {
			panic("auth: hash de contraseña demo: " + err.Error())
		}
		accounts[u.Username] = demoAccount{user: u, hash: hash}
	}
	return &DemoVerifier{accounts: accounts}
}

// Verify compara contra la tabla demo. Devuelve una copia del usuario o nil,
// sin revelar si falló el usuario o la contraseña.
func (v *DemoVerifier) Verify(username, password string) *entity.User {
	acc, ok := v.accounts[username]
	if !ok {
		return nil
	}
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return nil
	}
	u := acc.user
	return &u
}
