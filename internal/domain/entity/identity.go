package entity

// Identity es el usuario autenticado de una petición, tal como viene en el token.
type Identity struct {
	UserID string
	Role   string
}
