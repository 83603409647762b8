package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre           string  `json:"nombre"            validate:"required,min=2,max=120"`
	Correo           string  `json:"correo"            validate:"required,email,max=120"`
	Contrasena       string  `json:"contrasena"        validate:"required,min=4,max=72"`
	Rol              string  `json:"rol"               validate:"required,oneof=administrador cliente"`
	Cedula           string  `json:"cedula"            validate:"required,min=5,max=20"`
	Tipo             *string `json:"tipo"              validate:"omitempty,oneof=mayorista minorista"`
	ClienteFrecuente bool    `json:"cliente_frecuente"`
}

// ActualizarUsuarioRequest applies only the fields that are present;
// nil pointers leave the stored value untouched.
type ActualizarUsuarioRequest struct {
	Nombre           *string `json:"nombre"            validate:"omitempty,min=2,max=120"`
	Correo           *string `json:"correo"            validate:"omitempty,email,max=120"`
	Contrasena       *string `json:"contrasena"        validate:"omitempty,min=4,max=72"`
	Rol              *string `json:"rol"               validate:"omitempty,oneof=administrador cliente"`
	Cedula           *string `json:"cedula"            validate:"omitempty,min=5,max=20"`
	Tipo             *string `json:"tipo"              validate:"omitempty,oneof=mayorista minorista"`
	ClienteFrecuente *bool   `json:"cliente_frecuente"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// Text fields match case-insensitive "contains"; rol/tipo are exact.
type UsuarioFilter struct {
	Nombre           string `form:"nombre"`
	Correo           string `form:"correo"`
	Cedula           string `form:"cedula"`
	Rol              string `form:"rol"`
	Tipo             string `form:"tipo"`
	ClienteFrecuente *bool  `form:"cliente_frecuente"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Correo           string  `json:"correo"`
	Rol              string  `json:"rol"`
	Cedula           string  `json:"cedula"`
	Tipo             *string `json:"tipo"`
	ClienteFrecuente bool    `json:"cliente_frecuente"`
	CreadoEn         string  `json:"creado_en"`
	ActualizadoEn    string  `json:"actualizado_en"`
}
