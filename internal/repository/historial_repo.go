package repository

import (
	"context"

	"mundiclass/internal/model"

	"gorm.io/gorm"
)

// HistorialRepository persists the audit trail of deleted records.
type HistorialRepository interface {
	// CrearTx stages the audit row on the caller's transaction. The row
	// becomes visible only if the delete it documents also commits.
	CrearTx(tx *gorm.DB, h *model.HistorialEliminado) error

	// Listar returns audit entries newest first, optionally restricted
	// to a single source table.
	Listar(ctx context.Context, tabla string) ([]model.HistorialEliminado, error)
}

type historialRepo struct{ db *gorm.DB }

func NewHistorialRepository(db *gorm.DB) HistorialRepository { return &historialRepo{db: db} }

func (r *historialRepo) CrearTx(tx *gorm.DB, h *model.HistorialEliminado) error {
	return tx.Create(h).Error
}

func (r *historialRepo) Listar(ctx context.Context, tabla string) ([]model.HistorialEliminado, error) {
	q := r.db.WithContext(ctx).Model(&model.HistorialEliminado{})
	if tabla != "" {
		q = q.Where("tabla = ?", tabla)
	}

	var entradas []model.HistorialEliminado
	err := q.Order("eliminado_en desc").Find(&entradas).Error
	return entradas, err
}
