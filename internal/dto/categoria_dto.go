package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearCategoriaRequest also binds from multipart form fields so the create
// endpoint can take an image part alongside nombre/codigo.
type CrearCategoriaRequest struct {
	Nombre string  `json:"nombre" form:"nombre" validate:"required,min=2,max=120"`
	Codigo *string `json:"codigo" form:"codigo" validate:"omitempty,max=30"`
}

type ActualizarCategoriaRequest struct {
	Nombre    *string `json:"nombre"     validate:"omitempty,min=2,max=120"`
	Codigo    *string `json:"codigo"     validate:"omitempty,max=30"`
	ImagenURL *string `json:"imagen_url" validate:"omitempty,url"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type CategoriaFilter struct {
	Nombre string `form:"nombre"`
	Codigo string `form:"codigo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Codigo        *string `json:"codigo"`
	ImagenURL     *string `json:"imagen_url"`
	CreadoEn      string  `json:"creado_en"`
	ActualizadoEn string  `json:"actualizado_en"`
}
