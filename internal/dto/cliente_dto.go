package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre           string  `json:"nombre"            validate:"required,min=2,max=120"`
	Cedula           string  `json:"cedula"            validate:"required,min=5,max=20"`
	TipoCliente      *string `json:"tipo_cliente"      validate:"omitempty,oneof=mayorista minorista"`
	ClienteFrecuente bool    `json:"cliente_frecuente"`
	UsuarioID        *string `json:"usuario_id"        validate:"omitempty,uuid"`
}

type ActualizarClienteRequest struct {
	Nombre           *string `json:"nombre"            validate:"omitempty,min=2,max=120"`
	Cedula           *string `json:"cedula"            validate:"omitempty,min=5,max=20"`
	TipoCliente      *string `json:"tipo_cliente"      validate:"omitempty,oneof=mayorista minorista"`
	ClienteFrecuente *bool   `json:"cliente_frecuente"`
	UsuarioID        *string `json:"usuario_id"        validate:"omitempty,uuid"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ClienteFilter struct {
	Nombre           string `form:"nombre"`
	Cedula           string `form:"cedula"`
	TipoCliente      string `form:"tipo_cliente"`
	ClienteFrecuente *bool  `form:"cliente_frecuente"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Cedula           string  `json:"cedula"`
	TipoCliente      *string `json:"tipo_cliente"`
	ClienteFrecuente bool    `json:"cliente_frecuente"`
	UsuarioID        *string `json:"usuario_id"`
	CreadoEn         string  `json:"creado_en"`
}
