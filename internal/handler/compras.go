package handler

import (
	"net/http"

	"mundiclass/internal/dto"
	"mundiclass/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc *service.CompraService }

func NewComprasHandler(svc *service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// Crear POST /api/compras
func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.CrearCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCompraResponse(compra))
}

// Listar GET /api/compras
func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
	if !bindQuery(c, &filter) {
		return
	}
	compras, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		resp = append(resp, toCompraResponse(&compras[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/compras/:id
func (h *ComprasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	compra, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompraResponse(compra))
}

// Eliminar DELETE /api/compras/:id
// Restores the purchased stock as part of the same transaction.
func (h *ComprasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
