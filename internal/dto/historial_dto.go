package dto

// ─── Filter ──────────────────────────────────────────────────────────────────

type HistorialFilter struct {
	Tabla string `form:"tabla"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// Datos carries the snapshot exactly as it was written at deletion time.
type HistorialEliminadoResponse struct {
	ID          string         `json:"id"`
	Tabla       string         `json:"tabla"`
	RegistroID  string         `json:"registro_id"`
	Datos       map[string]any `json:"datos"`
	EliminadoEn string         `json:"eliminado_en"`
}
