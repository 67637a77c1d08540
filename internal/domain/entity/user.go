package entity

import (
	"strings"
	"time"
)

// Campos de usuario tal como los devuelve la API (claves en minúscula).
const (
	UserID         = "id_usuario"
	UserName       = "nombre_usuario"
	UserEmail      = "email"
	UserRole       = "rol"
	UserLegacyName = "nombre" // variante antigua del backend
)

// NewUserDescriptor descriptor de usuarios. style define las claves del alta:
// snake -> {nombre_usuario, email}; capitalized -> {Nombre, Email}.
func NewUserDescriptor(style PayloadStyle) *Descriptor {
	nameKey, emailKey := UserName, UserEmail
	if style == PayloadStyleCapitalized {
		nameKey, emailKey = "Nombre", "Email"
	}
	return &Descriptor{
		Kind:           KindUser,
		Title:          "Usuarios",
		Noun:           "usuario",
		CollectionPath: "/users",
		ResourcePath:   "/user",
		IDField:        UserID,
		Placeholder:    "No hay usuarios registrados.",
		LoadingText:    "Cargando usuarios...",
		CreatedMessage: "Usuario creado correctamente!",
		CreateFailed:   "Error al crear usuario",
		Fields: []Field{
			{Name: UserName, Label: "Nombre", Input: "text", Required: true},
			{Name: UserEmail, Label: "Email", Input: "email", Required: true},
		},
		summarize: summarizeUser,
		coerce: func(form FormValues, _ time.Time) (Payload, error) {
			return Payload{
				nameKey:  strings.TrimSpace(form[UserName]),
				emailKey: strings.TrimSpace(form[UserEmail]),
			}, nil
		},
	}
}

func summarizeUser(r Record) Summary {
	details := "Email: " + r.Text(UserEmail)
	if r.Has(UserRole) {
		details += " | Rol: " + r.Text(UserRole)
	}
	return Summary{
		Headline: "ID: " + orNA(r.Text(UserID)) + " - " + r.TextOr(UserName, UserLegacyName),
		Details:  []string{details},
	}
}
