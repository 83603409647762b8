package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre         string           `json:"nombre"          validate:"required,min=2,max=120"`
	Descripcion    *string          `json:"descripcion"     validate:"omitempty,max=250"`
	Cantidad       int              `json:"cantidad"        validate:"min=0"`
	ValorUnitario  decimal.Decimal  `json:"valor_unitario"  validate:"required"`
	ValorMayorista *decimal.Decimal `json:"valor_mayorista"`
	CategoriaID    *string          `json:"categoria_id"    validate:"omitempty,uuid"`
	ImagenURL      *string          `json:"imagen_url"      validate:"omitempty,url"`
}

type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre"          validate:"omitempty,min=2,max=120"`
	Descripcion    *string          `json:"descripcion"     validate:"omitempty,max=250"`
	Cantidad       *int             `json:"cantidad"        validate:"omitempty,min=0"`
	ValorUnitario  *decimal.Decimal `json:"valor_unitario"`
	ValorMayorista *decimal.Decimal `json:"valor_mayorista"`
	CategoriaID    *string          `json:"categoria_id"    validate:"omitempty,uuid"`
	ImagenURL      *string          `json:"imagen_url"      validate:"omitempty,url"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre      string   `form:"nombre"`
	CategoriaID string   `form:"categoria_id"`
	PrecioMin   *float64 `form:"precio_min"`
	PrecioMax   *float64 `form:"precio_max"`
	StockMin    *int     `form:"stock_min"`
	StockMax    *int     `form:"stock_max"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID             string           `json:"id"`
	Nombre         string           `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	Cantidad       int              `json:"cantidad"`
	ValorUnitario  decimal.Decimal  `json:"valor_unitario"`
	ValorMayorista *decimal.Decimal `json:"valor_mayorista"`
	CategoriaID    *string          `json:"categoria_id"`
	ImagenURL      *string          `json:"imagen_url"`
	CreadoEn       string           `json:"creado_en"`
	ActualizadoEn  string           `json:"actualizado_en"`
}
