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

type ProductoService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	historial  repository.HistorialRepository
}

func NewProductoService(productos repository.ProductoRepository, categorias repository.CategoriaRepository, historial repository.HistorialRepository) *ProductoService {
	return &ProductoService{productos: productos, categorias: categorias, historial: historial}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	categoriaID, err := s.resolverCategoria(ctx, req.CategoriaID)
	if err != nil {
		return nil, err
	}

	p := &model.Producto{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Cantidad:       req.Cantidad,
		ValorUnitario:  req.ValorUnitario,
		ValorMayorista: req.ValorMayorista,
		CategoriaID:    categoriaID,
		ImagenURL:      req.ImagenURL,
	}
	if err := s.productos.Crear(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, noEncontrado("Producto no encontrado")
	}
	return p, err
}

func (s *ProductoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	return s.productos.Listar(ctx, filter)
}

func (s *ProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoriaID != nil {
		categoriaID, err := s.resolverCategoria(ctx, req.CategoriaID)
		if err != nil {
			return nil, err
		}
		p.CategoriaID = categoriaID
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Cantidad != nil {
		p.Cantidad = *req.Cantidad
	}
	if req.ValorUnitario != nil {
		p.ValorUnitario = *req.ValorUnitario
	}
	if req.ValorMayorista != nil {
		p.ValorMayorista = req.ValorMayorista
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
	}

	if err := s.productos.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) ActualizarImagen(ctx context.Context, id uuid.UUID, url string) (*model.Producto, error) {
	p, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ImagenURL = &url
	if err := s.productos.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	p, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.productos.ContarCompras(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return conflicto("No se puede eliminar el producto porque tiene compras registradas")
	}

	return runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		if err := registrarEliminado(tx, s.historial, "productos", p.ID, p.Snapshot()); err != nil {
			return err
		}
		return s.productos.EliminarTx(tx, p.ID)
	})
}

func (s *ProductoService) resolverCategoria(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, conflicto("La categoría referenciada no existe")
	}
	if _, err := s.categorias.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conflicto("La categoría referenciada no existe")
		}
		return nil, err
	}
	return &id, nil
}
