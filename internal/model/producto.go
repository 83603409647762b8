package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto is a sellable item. Cantidad is the available stock and is only
// mutated through the conditional updates in ProductoRepository so that
// concurrent purchases cannot oversell.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string   `gorm:"type:varchar(250)"`

	Cantidad       int              `gorm:"not null;default:0"`
	ValorUnitario  decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	ValorMayorista *decimal.Decimal `gorm:"type:decimal(12,2)"`

	CategoriaID *uuid.UUID `gorm:"type:uuid;index"`
	ImagenURL   *string    `gorm:"column:imagen_url"`

	CreadoEn      time.Time `gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `gorm:"column:actualizado_en;autoUpdateTime"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }

func (p *Producto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Producto) Snapshot() map[string]any {
	var categoriaID *string
	if p.CategoriaID != nil {
		s := p.CategoriaID.String()
		categoriaID = &s
	}
	var mayorista *string
	if p.ValorMayorista != nil {
		s := p.ValorMayorista.String()
		mayorista = &s
	}
	return map[string]any{
		"id":              p.ID.String(),
		"nombre":          p.Nombre,
		"descripcion":     p.Descripcion,
		"cantidad":        p.Cantidad,
		"valor_unitario":  p.ValorUnitario.String(),
		"valor_mayorista": mayorista,
		"categoria_id":    categoriaID,
		"imagen_url":      p.ImagenURL,
		"creado_en":       p.CreadoEn.Format(time.RFC3339),
		"actualizado_en":  p.ActualizadoEn.Format(time.RFC3339),
	}
}
