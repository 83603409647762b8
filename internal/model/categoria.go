package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categoria represents a product category used to classify products.
type Categoria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Codigo    *string   `gorm:"type:varchar(30);index"`
	ImagenURL *string   `gorm:"column:imagen_url"`

	CreadoEn      time.Time `gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `gorm:"column:actualizado_en;autoUpdateTime"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }

func (c *Categoria) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Categoria) Snapshot() map[string]any {
	return map[string]any{
		"id":             c.ID.String(),
		"nombre":         c.Nombre,
		"codigo":         c.Codigo,
		"imagen_url":     c.ImagenURL,
		"creado_en":      c.CreadoEn.Format(time.RFC3339),
		"actualizado_en": c.ActualizadoEn.Format(time.RFC3339),
	}
}
