package service

import (
	"context"
	"errors"

	"mundiclass/internal/dto"
	"mundiclass/internal/model"
	"mundiclass/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsuarioService owns the business rules around user accounts: uniqueness of
// correo and cédula, password hashing, and the delete guard over clients.
type UsuarioService struct {
	usuarios  repository.UsuarioRepository
	historial repository.HistorialRepository
}

func NewUsuarioService(usuarios repository.UsuarioRepository, historial repository.HistorialRepository) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, historial: historial}
}

func (s *UsuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error) {
	if _, err := s.usuarios.ObtenerPorCorreo(ctx, req.Correo); err == nil {
		return nil, conflicto("Ya existe un usuario con ese correo")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.usuarios.ObtenerPorCedula(ctx, req.Cedula); err == nil {
		return nil, conflicto("Ya existe un usuario con esa cédula")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		Nombre:           req.Nombre,
		Correo:           req.Correo,
		Contrasena:       string(hash),
		Rol:              req.Rol,
		Cedula:           req.Cedula,
		Tipo:             req.Tipo,
		ClienteFrecuente: req.ClienteFrecuente,
	}
	if err := s.usuarios.Crear(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UsuarioService) Obtener(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, err := s.usuarios.ObtenerPorID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, noEncontrado("Usuario no encontrado")
	}
	return u, err
}

func (s *UsuarioService) Listar(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, error) {
	return s.usuarios.Listar(ctx, filter)
}

// Actualizar applies only the fields present in the request. Uniqueness is
// re-checked only for the fields actually changing.
func (s *UsuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.Usuario, error) {
	u, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Correo != nil && *req.Correo != u.Correo {
		if otro, err := s.usuarios.ObtenerPorCorreo(ctx, *req.Correo); err == nil && otro.ID != u.ID {
			return nil, conflicto("Ya existe un usuario con ese correo")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		u.Correo = *req.Correo
	}
	if req.Cedula != nil && *req.Cedula != u.Cedula {
		if otro, err := s.usuarios.ObtenerPorCedula(ctx, *req.Cedula); err == nil && otro.ID != u.ID {
			return nil, conflicto("Ya existe un usuario con esa cédula")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		u.Cedula = *req.Cedula
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Contrasena != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Contrasena = string(hash)
	}
	if req.Rol != nil {
		u.Rol = *req.Rol
	}
	if req.Tipo != nil {
		u.Tipo = req.Tipo
	}
	if req.ClienteFrecuente != nil {
		u.ClienteFrecuente = *req.ClienteFrecuente
	}

	if err := s.usuarios.Actualizar(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Eliminar rejects the delete while clients reference the account; otherwise
// it writes the audit snapshot and removes the row in one transaction.
func (s *UsuarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	u, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.usuarios.ContarClientes(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return conflicto("No se puede eliminar el usuario porque tiene clientes asociados")
	}

	return runTx(ctx, s.usuarios.DB(), func(tx *gorm.DB) error {
		if err := registrarEliminado(tx, s.historial, "usuarios", u.ID, u.Snapshot()); err != nil {
			return err
		}
		return s.usuarios.EliminarTx(tx, u.ID)
	})
}
