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

type ClienteService struct {
	clientes  repository.ClienteRepository
	usuarios  repository.UsuarioRepository
	historial repository.HistorialRepository
}

func NewClienteService(clientes repository.ClienteRepository, usuarios repository.UsuarioRepository, historial repository.HistorialRepository) *ClienteService {
	return &ClienteService{clientes: clientes, usuarios: usuarios, historial: historial}
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	if _, err := s.clientes.ObtenerPorCedula(ctx, req.Cedula); err == nil {
		return nil, conflicto("Ya existe un cliente con esa cédula")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	usuarioID, err := s.resolverUsuario(ctx, req.UsuarioID)
	if err != nil {
		return nil, err
	}

	c := &model.Cliente{
		Nombre:           req.Nombre,
		Cedula:           req.Cedula,
		TipoCliente:      req.TipoCliente,
		ClienteFrecuente: req.ClienteFrecuente,
		UsuarioID:        usuarioID,
	}
	if err := s.clientes.Crear(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.clientes.ObtenerPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, noEncontrado("Cliente no encontrado")
	}
	return c, err
}

func (s *ClienteService) Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error) {
	return s.clientes.Listar(ctx, filter)
}

func (s *ClienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Cedula != nil && *req.Cedula != c.Cedula {
		if otro, err := s.clientes.ObtenerPorCedula(ctx, *req.Cedula); err == nil && otro.ID != c.ID {
			return nil, conflicto("Ya existe un cliente con esa cédula")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.Cedula = *req.Cedula
	}
	if req.UsuarioID != nil {
		usuarioID, err := s.resolverUsuario(ctx, req.UsuarioID)
		if err != nil {
			return nil, err
		}
		c.UsuarioID = usuarioID
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.TipoCliente != nil {
		c.TipoCliente = req.TipoCliente
	}
	if req.ClienteFrecuente != nil {
		c.ClienteFrecuente = *req.ClienteFrecuente
	}

	if err := s.clientes.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.clientes.ContarCompras(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return conflicto("No se puede eliminar el cliente porque tiene compras registradas")
	}

	return runTx(ctx, s.clientes.DB(), func(tx *gorm.DB) error {
		if err := registrarEliminado(tx, s.historial, "clientes", c.ID, c.Snapshot()); err != nil {
			return err
		}
		return s.clientes.EliminarTx(tx, c.ID)
	})
}

// resolverUsuario validates the optional account reference. The id arrives
// pre-validated as a UUID string; a missing account is a conflict, matching
// how invalid references are reported elsewhere.
func (s *ClienteService) resolverUsuario(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, conflicto("El usuario referenciado no existe")
	}
	if _, err := s.usuarios.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conflicto("El usuario referenciado no existe")
		}
		return nil, err
	}
	return &id, nil
}
