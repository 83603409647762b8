package service

import (
	"context"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"
	"mundiclass/internal/repository"
)

// HistorialService exposes the deletion log, read-only. Writing happens
// exclusively inside the entity services' delete transactions.
type HistorialService struct {
	historial repository.HistorialRepository
}

func NewHistorialService(historial repository.HistorialRepository) *HistorialService {
	return &HistorialService{historial: historial}
}

func (s *HistorialService) Listar(ctx context.Context, filter dto.HistorialFilter) ([]model.HistorialEliminado, error) {
	return s.historial.Listar(ctx, filter.Tabla)
}
