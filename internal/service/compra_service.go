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

// CompraService creates and deletes purchases. Both paths are transactional:
// the stock mutation and the purchase row always commit or roll back together,
// and deletes additionally stage an audit snapshot on the same transaction.
type CompraService struct {
	compras   repository.CompraRepository
	clientes  repository.ClienteRepository
	productos repository.ProductoRepository
	historial repository.HistorialRepository
}

func NewCompraService(compras repository.CompraRepository, clientes repository.ClienteRepository, productos repository.ProductoRepository, historial repository.HistorialRepository) *CompraService {
	return &CompraService{compras: compras, clientes: clientes, productos: productos, historial: historial}
}

// Crear registers a purchase. The stock decrement is a conditional update
// so two concurrent purchases can never oversell: whoever loses the race
// sees zero rows affected and gets the insufficient stock conflict.
// Price and total are stored exactly as submitted.
func (s *CompraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*model.Compra, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, noEncontrado("Cliente no encontrado")
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, noEncontrado("Producto no encontrado")
	}

	if _, err := s.clientes.ObtenerPorID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontrado("Cliente no encontrado")
		}
		return nil, err
	}
	if _, err := s.productos.ObtenerPorID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontrado("Producto no encontrado")
		}
		return nil, err
	}

	compra := &model.Compra{
		ClienteID:              clienteID,
		ProductoID:             productoID,
		Cantidad:               req.Cantidad,
		PrecioUnitarioAplicado: req.PrecioUnitarioAplicado,
		Total:                  req.Total,
	}

	err = runTx(ctx, s.compras.DB(), func(tx *gorm.DB) error {
		filas, err := s.productos.DescontarStockTx(tx, productoID, req.Cantidad)
		if err != nil {
			return err
		}
		if filas == 0 {
			var p model.Producto
			if err := tx.First(&p, "id = ?", productoID).Error; err != nil {
				return err
			}
			return conflicto("Stock insuficiente. Disponible: %d", p.Cantidad)
		}
		return s.compras.CrearTx(tx, compra)
	})
	if err != nil {
		return nil, err
	}

	return s.compras.ObtenerPorID(ctx, compra.ID)
}

func (s *CompraService) Obtener(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	c, err := s.compras.ObtenerPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, noEncontrado("Compra no encontrada")
	}
	return c, err
}

func (s *CompraService) Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, error) {
	return s.compras.Listar(ctx, filter)
}

// Eliminar restores the purchased units to the product, writes the audit
// snapshot and removes the purchase, all in one transaction.
func (s *CompraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}

	return runTx(ctx, s.compras.DB(), func(tx *gorm.DB) error {
		if err := registrarEliminado(tx, s.historial, "compras", c.ID, c.Snapshot()); err != nil {
			return err
		}
		if err := s.productos.RestaurarStockTx(tx, c.ProductoID, c.Cantidad); err != nil {
			return err
		}
		return s.compras.EliminarTx(tx, c.ID)
	})
}
