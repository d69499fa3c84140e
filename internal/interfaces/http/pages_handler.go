package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/pkg/jwt"
)

// PagesHandler sirve la superficie de navegación: páginas HTML mínimas que
// replican las rutas del cliente. Las páginas protegidas redirigen a /login
// cuando no hay sesión; la autenticación se resuelve por la cookie que deja
// el login (o por el header Authorization si viene).
type PagesHandler struct {
	jwtSecret string
}

// NewPagesHandler construye el handler.
func NewPagesHandler(jwtSecret string) *PagesHandler {
	return &PagesHandler{jwtSecret: jwtSecret}
}

// authenticated valida el token de la cookie de navegación. No escribe
// respuesta: las páginas deciden entre redirigir o renderizar.
func (h *PagesHandler) authenticated(c *fiber.Ctx) bool {
	token := c.Cookies(TokenCookie)
	if token == "" {
		return false
	}
	_, _, _, err := jwt.Parse(h.jwtSecret, token)
	return err == nil
}

// Root redirige la raíz al dashboard. Si no hay sesión, el guard del
// dashboard completa la cadena hasta /login.
func (h *PagesHandler) Root(c *fiber.Ctx) error {
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// LoginPage renderiza el formulario de acceso. Con sesión activa redirige
// directo al dashboard.
func (h *PagesHandler) LoginPage(c *fiber.Ctx) error {
	if h.authenticated(c) {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page("Login", `<form method="post" action="/api/auth/login">
  <input name="username" placeholder="Usuario">
  <input name="password" type="password" placeholder="Contraseña">
  <button type="submit">Entrar</button>
</form>`))
}

// Protected envuelve una página que exige sesión: sin token válido en la
// cookie redirige a /login con 302.
func (h *PagesHandler) Protected(title, body string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !h.authenticated(c) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(page(title, body))
	}
}

// Placeholder es una página protegida aún sin contenido real.
func (h *PagesHandler) Placeholder(title string) fiber.Handler {
	return h.Protected(title, fmt.Sprintf("<p>%s page coming soon...</p>", title))
}

func page(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>eMart · %s</title></head>
<body>
<h1>%s</h1>
%s
</body>
</html>`, title, title, body)
}
