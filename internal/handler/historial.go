package handler

import (
	"net/http"

	"mundiclass/internal/dto"
	"mundiclass/internal/service"

	"github.com/gin-gonic/gin"
)

type HistorialHandler struct{ svc *service.HistorialService }

func NewHistorialHandler(svc *service.HistorialService) *HistorialHandler {
	return &HistorialHandler{svc: svc}
}

// ListarEliminados GET /api/historial/eliminados?tabla=
func (h *HistorialHandler) ListarEliminados(c *gin.Context) {
	var filter dto.HistorialFilter
	if !bindQuery(c, &filter) {
		return
	}
	entradas, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.HistorialEliminadoResponse, 0, len(entradas))
	for i := range entradas {
		resp = append(resp, toHistorialResponse(&entradas[i]))
	}
	c.JSON(http.StatusOK, resp)
}
