package service

import (
	"context"
	"encoding/json"
	"testing"

	"mundiclass/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func usuarioValido(correo, cedula string) dto.CrearUsuarioRequest {
	return dto.CrearUsuarioRequest{
		Nombre:     "Maria",
		Correo:     correo,
		Contrasena: "secreta",
		Rol:        "cliente",
		Cedula:     cedula,
	}
}

func TestUsuarioCrearHasheaContrasena(t *testing.T) {
	e := newEntorno(t)

	u, err := e.usuarios.Crear(context.Background(), usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)
	assert.NotEqual(t, "secreta", u.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte("secreta")))
}

func TestUsuarioCrearCorreoDuplicado(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	_, err := e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)

	_, err = e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "99999"))
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
	assert.Contains(t, err.Error(), "correo")

	_, err = e.usuarios.Crear(ctx, usuarioValido("otra@example.com", "12345"))
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
	assert.Contains(t, err.Error(), "cédula")
}

func TestUsuarioActualizarParcial(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	u, err := e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)

	nombre := "Maria Elena"
	actualizado, err := e.usuarios.Actualizar(ctx, u.ID, dto.ActualizarUsuarioRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Maria Elena", actualizado.Nombre)
	// untouched fields survive
	assert.Equal(t, "maria@example.com", actualizado.Correo)
	assert.Equal(t, "12345", actualizado.Cedula)
}

func TestUsuarioActualizarCorreoOcupado(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	_, err := e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)
	otro, err := e.usuarios.Crear(ctx, usuarioValido("otra@example.com", "67890"))
	require.NoError(t, err)

	ocupado := "maria@example.com"
	_, err = e.usuarios.Actualizar(ctx, otro.ID, dto.ActualizarUsuarioRequest{Correo: &ocupado})
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
}

func TestUsuarioEliminarBloqueadoPorClientes(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	u, err := e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)

	usuarioID := u.ID.String()
	cliente, err := e.clientes.Crear(ctx, dto.CrearClienteRequest{
		Nombre:    "Maria",
		Cedula:    "12345",
		UsuarioID: &usuarioID,
	})
	require.NoError(t, err)

	err = e.usuarios.Eliminar(ctx, u.ID)
	require.Error(t, err)
	assert.True(t, EsConflicto(err))
	assert.Equal(t, 0, e.contarHistorial(t, "usuarios"))

	// removing the dependent client unblocks the delete
	require.NoError(t, e.clientes.Eliminar(ctx, cliente.ID))
	require.NoError(t, e.usuarios.Eliminar(ctx, u.ID))
	assert.Equal(t, 1, e.contarHistorial(t, "usuarios"))
}

func TestUsuarioSnapshotOmiteContrasena(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	u, err := e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)
	require.NoError(t, e.usuarios.Eliminar(ctx, u.ID))

	entradas, err := e.historial.Listar(ctx, dto.HistorialFilter{Tabla: "usuarios"})
	require.NoError(t, err)
	require.Len(t, entradas, 1)

	var datos map[string]any
	require.NoError(t, json.Unmarshal(entradas[0].Datos, &datos))
	assert.Equal(t, "maria@example.com", datos["correo"])
	assert.NotContains(t, datos, "contrasena")
}

func TestUsuarioObtenerInexistente(t *testing.T) {
	e := newEntorno(t)

	_, err := e.usuarios.Obtener(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, EsNoEncontrado(err))
}

func TestUsuarioListarFiltros(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	_, err := e.usuarios.Crear(ctx, usuarioValido("maria@example.com", "12345"))
	require.NoError(t, err)
	admin := usuarioValido("admin@example.com", "67890")
	admin.Rol = "administrador"
	_, err = e.usuarios.Crear(ctx, admin)
	require.NoError(t, err)

	admins, err := e.usuarios.Listar(ctx, dto.UsuarioFilter{Rol: "administrador"})
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@example.com", admins[0].Correo)

	porCorreo, err := e.usuarios.Listar(ctx, dto.UsuarioFilter{Correo: "MARIA"})
	require.NoError(t, err)
	require.Len(t, porCorreo, 1)
}
