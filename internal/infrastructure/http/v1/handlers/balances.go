package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"heladero/internal/core/apperror"
	"heladero/internal/domain/balance"
	"heladero/internal/infrastructure/http/v1/dto"
)

// BalancesHandler handles HTTP requests for balances.
type BalancesHandler struct {
	*BaseHandler
	service *balance.Service
}

// NewBalancesHandler creates a new balances handler.
func NewBalancesHandler(base *BaseHandler, service *balance.Service) *BalancesHandler {
	return &BalancesHandler{BaseHandler: base, service: service}
}

// Obtener handles GET /balances?modo=dia|semana&fecha=2006-01-02
// fecha defaults to today.
func (h *BalancesHandler) Obtener(c *gin.Context) {
	modo := balance.Modo(c.DefaultQuery("modo", string(balance.Semana)))

	ancla := time.Now()
	if v := c.Query("fecha"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid fecha, expected YYYY-MM-DD"))
			return
		}
		ancla = parsed
	}

	b, periodo, err := h.service.CalcularPeriodo(c.Request.Context(), modo, ancla)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBalance(b, periodo))
}

// ObtenerRango handles GET /balances/rango?desde=&hasta= (RFC3339).
func (h *BalancesHandler) ObtenerRango(c *gin.Context) {
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

	b, err := h.service.Calcular(c.Request.Context(), desde, hasta)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBalance(b, balance.Periodo{Desde: desde, Hasta: hasta}))
}
