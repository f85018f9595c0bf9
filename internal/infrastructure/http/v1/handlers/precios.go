package handlers

import (
	"github.com/gin-gonic/gin"

	"heladero/internal/domain/pricing"
	"heladero/internal/infrastructure/http/v1/dto"
)

// PreciosHandler handles HTTP requests for price lists and resolution.
type PreciosHandler struct {
	*BaseHandler
	service *pricing.Service
}

// NewPreciosHandler creates a new pricing handler.
func NewPreciosHandler(base *BaseHandler, service *pricing.Service) *PreciosHandler {
	return &PreciosHandler{BaseHandler: base, service: service}
}

// CrearLista handles POST /listas-precios
func (h *PreciosHandler) CrearLista(c *gin.Context) {
	var req dto.CrearListaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	lista, err := h.service.CrearLista(c.Request.Context(), req.Nombre, req.ToNuevasReglas())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, lista.ID.String())
}

// ListaActiva handles GET /listas-precios/activa
func (h *PreciosHandler) ListaActiva(c *gin.Context) {
	ctx := c.Request.Context()

	lista, err := h.service.ListaActiva(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	reglas, err := h.service.ReglasActivas(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromLista(lista, reglas))
}

// ResolverPrecios handles POST /precios/resolver
func (h *PreciosHandler) ResolverPrecios(c *gin.Context) {
	var req dto.ResolverPreciosRequest
	if !h.BindJSON(c, &req) {
		return
	}

	precios, err := h.service.ResolverPrecios(c.Request.Context(), req.CantidadAgua, req.CantidadCrema)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.PreciosResponse{
		PrecioAgua:  precios.PrecioAgua,
		PrecioCrema: precios.PrecioCrema,
	})
}
