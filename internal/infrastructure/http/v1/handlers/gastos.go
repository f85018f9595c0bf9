package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"heladero/internal/core/apperror"
	"heladero/internal/domain/expenses"
	"heladero/internal/infrastructure/http/v1/dto"
)

// GastosHandler handles HTTP requests for gastos.
type GastosHandler struct {
	*BaseHandler
	service *expenses.Service
}

// NewGastosHandler creates a new gastos handler.
func NewGastosHandler(base *BaseHandler, service *expenses.Service) *GastosHandler {
	return &GastosHandler{BaseHandler: base, service: service}
}

// Crear handles POST /gastos
func (h *GastosHandler) Crear(c *gin.Context) {
	var req dto.CrearGastoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	gasto, err := h.service.Ingresar(c.Request.Context(), req.Monto)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gasto.ID.String())
}

// Listar handles GET /gastos?desde=&hasta=
func (h *GastosHandler) Listar(c *gin.Context) {
	desde, err := time.Parse(time.RFC3339, c.Query("desde"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid desde, expected RFC3339"))
		return
	}
	hasta, err := time.Parse(time.RFC3339, c.Query("hasta"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid hasta, expected RFC3339"))
		return
	}

	gastos, err := h.service.EnPeriodo(c.Request.Context(), desde, hasta)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromGastos(gastos))
}

// Eliminar handles DELETE /gastos/:id (soft delete).
func (h *GastosHandler) Eliminar(c *gin.Context) {
	gastoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	if err := h.service.Eliminar(c.Request.Context(), gastoID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
