package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"mundiclass/internal/config"
	"mundiclass/internal/infra"
	"mundiclass/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type almacenFalso struct{ subidos int }

func (a *almacenFalso) Subir(ctx context.Context, key, contentType string, datos []byte) error {
	a.subidos++
	return nil
}

func (a *almacenFalso) URLPublica(key string) string {
	return "https://cdn.example.com/" + key
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	cfg := &config.Config{Env: "production", Port: 0}
	return router.New(cfg, db, &almacenFalso{})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCategoriasCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/categorias", gin.H{"nombre": "Papeleria"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creada := decode(t, w)
	id := creada["id"].(string)
	assert.Equal(t, "Papeleria", creada["nombre"])

	// duplicate name is rejected
	w = doJSON(t, r, http.MethodPost, "/api/categorias", gin.H{"nombre": "Papeleria"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/categorias/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/categorias/no-es-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/categorias/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/categorias/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// the delete shows up in the audit trail
	w = doJSON(t, r, http.MethodGet, "/api/historial/eliminados?tabla=categorias", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entradas []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entradas))
	require.Len(t, entradas, 1)
	assert.Equal(t, id, entradas[0]["registro_id"])
}

func TestUsuariosValidacion(t *testing.T) {
	r := newTestRouter(t)

	// missing correo / contrasena
	w := doJSON(t, r, http.MethodPost, "/api/usuarios", gin.H{"nombre": "Maria"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/usuarios", gin.H{
		"nombre":     "Maria",
		"correo":     "maria@example.com",
		"contrasena": "secreta",
		"rol":        "cliente",
		"cedula":     "12345",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creado := decode(t, w)
	assert.NotContains(t, creado, "contrasena")
}

func TestComprasStockInsuficiente(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/clientes", gin.H{"nombre": "Ana", "cedula": "11111"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clienteID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/productos", gin.H{
		"nombre":         "Cuaderno",
		"cantidad":       10,
		"valor_unitario": "5",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productoID := decode(t, w)["id"].(string)

	compra := gin.H{
		"cliente_id":               clienteID,
		"producto_id":              productoID,
		"cantidad":                 4,
		"precio_unitario_aplicado": "5",
		"total":                    "20",
	}
	w = doJSON(t, r, http.MethodPost, "/api/compras", compra)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	compra["cantidad"] = 7
	w = doJSON(t, r, http.MethodPost, "/api/compras", compra)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Stock insuficiente")

	// stock stayed at 6
	w = doJSON(t, r, http.MethodGet, "/api/productos/"+productoID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 6, decode(t, w)["cantidad"])
}

func TestSubirImagenProducto(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/productos", gin.H{
		"nombre":         "Cuaderno",
		"cantidad":       1,
		"valor_unitario": "5",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productoID := decode(t, w)["id"].(string)

	subir := func(contentType string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="archivo"; filename="foto.png"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("datos-binarios"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/productos/%s/imagen", productoID), &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := subir("image/png")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode(t, rec)
	assert.Equal(t, productoID, resp["registro_id"])
	assert.Contains(t, resp["url_publica"], "https://cdn.example.com/")

	// non-image content type is rejected
	rec = subir("text/plain")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// only the successful upload is listed
	w = doJSON(t, r, http.MethodGet, "/api/productos/"+productoID+"/imagenes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var medios []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &medios))
	require.Len(t, medios, 1)
	assert.Equal(t, "image/png", medios[0]["media_type"])
}
