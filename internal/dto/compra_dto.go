package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Precio and total come from the caller and are stored as given: the price
// that was actually charged, which may differ from the product's list price.
type CrearCompraRequest struct {
	ClienteID              string          `json:"cliente_id"               validate:"required,uuid"`
	ProductoID             string          `json:"producto_id"              validate:"required,uuid"`
	Cantidad               int             `json:"cantidad"                 validate:"required,min=1"`
	PrecioUnitarioAplicado decimal.Decimal `json:"precio_unitario_aplicado" validate:"required"`
	Total                  decimal.Decimal `json:"total"                    validate:"required"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// FechaDesde/FechaHasta accept RFC 3339 or plain YYYY-MM-DD dates.
type CompraFilter struct {
	ClienteID      string   `form:"cliente_id"`
	ProductoID     string   `form:"producto_id"`
	MinTotal       *float64 `form:"min_total"`
	MaxTotal       *float64 `form:"max_total"`
	FechaDesde     string   `form:"fecha_desde"`
	FechaHasta     string   `form:"fecha_hasta"`
	NombreCliente  string   `form:"nombre_cliente"`
	NombreProducto string   `form:"nombre_producto"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CompraResponse struct {
	ID                     string          `json:"id"`
	ClienteID              string          `json:"cliente_id"`
	ProductoID             string          `json:"producto_id"`
	Cliente                string          `json:"cliente,omitempty"`
	Producto               string          `json:"producto,omitempty"`
	Cantidad               int             `json:"cantidad"`
	PrecioUnitarioAplicado decimal.Decimal `json:"precio_unitario_aplicado"`
	Total                  decimal.Decimal `json:"total"`
	Fecha                  string          `json:"fecha"`
}
