package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Compra records one purchase of a product by a client. The applied unit
// price and total are stored exactly as submitted, which may differ from
// the product's current list price.
type Compra struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ClienteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`

	Cantidad int `gorm:"not null;default:1"`

	PrecioUnitarioAplicado decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total                  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Fecha time.Time `gorm:"column:fecha;autoCreateTime"`

	Cliente  *Cliente  `gorm:"foreignKey:ClienteID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Compra) TableName() string { return "compras" }

func (c *Compra) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Compra) Snapshot() map[string]any {
	return map[string]any{
		"id":                       c.ID.String(),
		"cliente_id":               c.ClienteID.String(),
		"producto_id":              c.ProductoID.String(),
		"cantidad":                 c.Cantidad,
		"precio_unitario_aplicado": c.PrecioUnitarioAplicado.String(),
		"total":                    c.Total.String(),
		"fecha":                    c.Fecha.Format(time.RFC3339),
	}
}
