package service

import (
	"context"
	"errors"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"
	"mundiclass/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoriaService struct {
	categorias repository.CategoriaRepository
	historial  repository.HistorialRepository
}

func NewCategoriaService(categorias repository.CategoriaRepository, historial repository.HistorialRepository) *CategoriaService {
	return &CategoriaService{categorias: categorias, historial: historial}
}

func (s *CategoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	if _, err := s.categorias.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, conflicto("Ya existe una categoría con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Categoria{
		Nombre: req.Nombre,
		Codigo: req.Codigo,
	}
	if err := s.categorias.Crear(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoriaService) Obtener(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, err := s.categorias.ObtenerPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, noEncontrado("Categoría no encontrada")
	}
	return c, err
}

func (s *CategoriaService) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error) {
	return s.categorias.Listar(ctx, filter)
}

func (s *CategoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*model.Categoria, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if otra, err := s.categorias.ObtenerPorNombre(ctx, *req.Nombre); err == nil && otra.ID != c.ID {
			return nil, conflicto("Ya existe una categoría con ese nombre")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		c.Codigo = req.Codigo
	}
	if req.ImagenURL != nil {
		c.ImagenURL = req.ImagenURL
	}

	if err := s.categorias.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ActualizarImagen records the public URL of a freshly uploaded image.
func (s *CategoriaService) ActualizarImagen(ctx context.Context, id uuid.UUID, url string) (*model.Categoria, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	c.ImagenURL = &url
	if err := s.categorias.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.categorias.ContarProductos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return conflicto("No se puede eliminar la categoría porque tiene productos asociados")
	}

	return runTx(ctx, s.categorias.DB(), func(tx *gorm.DB) error {
		if err := registrarEliminado(tx, s.historial, "categorias", c.ID, c.Snapshot()); err != nil {
			return err
		}
		return s.categorias.EliminarTx(tx, c.ID)
	})
}
