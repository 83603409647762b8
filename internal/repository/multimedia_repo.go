package repository

import (
	"context"

	"mundiclass/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MultimediaRepository stores attachment records pointing at uploaded objects.
type MultimediaRepository interface {
	Crear(ctx context.Context, m *model.Multimedia) error
	ListarPorDueno(ctx context.Context, modelType string, modelID uuid.UUID) ([]model.Multimedia, error)
}

type multimediaRepo struct{ db *gorm.DB }

func NewMultimediaRepository(db *gorm.DB) MultimediaRepository { return &multimediaRepo{db: db} }

func (r *multimediaRepo) Crear(ctx context.Context, m *model.Multimedia) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *multimediaRepo) ListarPorDueno(ctx context.Context, modelType string, modelID uuid.UUID) ([]model.Multimedia, error) {
	var medios []model.Multimedia
	err := r.db.WithContext(ctx).
		Where("model_type = ? AND model_id = ?", modelType, modelID).
		Order("creado_en desc").Find(&medios).Error
	return medios, err
}
