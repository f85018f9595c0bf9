package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/domain/orders"
	"heladero/internal/infrastructure/http/v1/dto"
)

// PedidosHandler handles HTTP requests for pedidos.
type PedidosHandler struct {
	*BaseHandler
	service *orders.Service
}

// NewPedidosHandler creates a new pedidos handler.
func NewPedidosHandler(base *BaseHandler, service *orders.Service) *PedidosHandler {
	return &PedidosHandler{BaseHandler: base, service: service}
}

// Crear handles POST /pedidos
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pedido, err := h.service.Crear(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, pedido.ID.String())
}

// Listar handles GET /pedidos
func (h *PedidosHandler) Listar(c *gin.Context) {
	filtro, ok := h.parseFiltro(c)
	if !ok {
		return
	}

	pedidos, err := h.service.Buscar(c.Request.Context(), filtro)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPedidos(pedidos))
}

// Obtener handles GET /pedidos/:id
func (h *PedidosHandler) Obtener(c *gin.Context) {
	pedidoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	pedido, err := h.service.Obtener(c.Request.Context(), pedidoID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPedido(pedido))
}

// Editar handles PUT /pedidos/:id
func (h *PedidosHandler) Editar(c *gin.Context) {
	pedidoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.EditarPedidoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pedido, err := h.service.Editar(c.Request.Context(), pedidoID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPedido(pedido))
}

// ActualizarEstado handles PATCH /pedidos/:id/estado
func (h *PedidosHandler) ActualizarEstado(c *gin.Context) {
	pedidoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.EstadoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ActualizarEstado(c.Request.Context(), pedidoID, orders.Estado(req.Estado)); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "estado actualizado")
}

// ActualizarPagado handles PATCH /pedidos/:id/pagado
func (h *PedidosHandler) ActualizarPagado(c *gin.Context) {
	pedidoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.PagadoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ActualizarPagado(c.Request.Context(), pedidoID, *req.Pagado); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "pago actualizado")
}

// ActualizarEnviado handles PATCH /pedidos/:id/enviado
func (h *PedidosHandler) ActualizarEnviado(c *gin.Context) {
	pedidoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.EnviadoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ActualizarEnviado(c.Request.Context(), pedidoID, *req.Enviado); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "envio actualizado")
}

// ActualizarCostoEnvio handles PATCH /pedidos/:id/costo-envio
func (h *PedidosHandler) ActualizarCostoEnvio(c *gin.Context) {
	pedidoID, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.CostoEnvioRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ActualizarCostoEnvio(c.Request.Context(), pedidoID, req.CostoEnvio); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "costo de envio actualizado")
}

// BulkEstado handles POST /pedidos/bulk/estado
func (h *PedidosHandler) BulkEstado(c *gin.Context) {
	var req dto.BulkEstadoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ids, ok := h.parseIDs(c, req.IDs)
	if !ok {
		return
	}

	if err := h.service.ActualizarEstadoMasivo(c.Request.Context(), ids, orders.Estado(req.Estado)); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "estados actualizados")
}

// BulkPagado handles POST /pedidos/bulk/pagado
func (h *PedidosHandler) BulkPagado(c *gin.Context) {
	var req dto.BulkPagadoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ids, ok := h.parseIDs(c, req.IDs)
	if !ok {
		return
	}

	if err := h.service.ActualizarPagadoMasivo(c.Request.Context(), ids, *req.Pagado); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "pagos actualizados")
}

// BulkEnviado handles POST /pedidos/bulk/enviado
func (h *PedidosHandler) BulkEnviado(c *gin.Context) {
	var req dto.BulkEnviadoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ids, ok := h.parseIDs(c, req.IDs)
	if !ok {
		return
	}

	if err := h.service.ActualizarEnviadoMasivo(c.Request.Context(), ids, *req.Enviado); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "envios actualizados")
}

func (h *PedidosHandler) parseIDs(c *gin.Context, raw []string) ([]id.ID, bool) {
	ids := make([]id.ID, 0, len(raw))
	for _, s := range raw {
		parsed, err := id.Parse(s)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid id in list").WithDetail("id", s))
			return nil, false
		}
		ids = append(ids, parsed)
	}
	return ids, true
}

func (h *PedidosHandler) parseFiltro(c *gin.Context) (orders.Filtro, bool) {
	var filtro orders.Filtro

	if v := c.Query("desde"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid desde, expected RFC3339"))
			return filtro, false
		}
		filtro.Desde = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid hasta, expected RFC3339"))
			return filtro, false
		}
		filtro.Hasta = &t
	}
	if v := c.Query("estado"); v != "" {
		estado := orders.Estado(v)
		if !estado.Valido() {
			h.Error(c, apperror.NewValidation("invalid estado").WithDetail("estado", v))
			return filtro, false
		}
		filtro.Estado = &estado
	}
	if v := c.Query("pagado"); v != "" {
		pagado := v == "true"
		filtro.Pagado = &pagado
	}
	if v := c.Query("metodoPago"); v != "" {
		metodo := orders.MetodoPago(v)
		if !metodo.Valido() {
			h.Error(c, apperror.NewValidation("invalid metodoPago").WithDetail("metodoPago", v))
			return filtro, false
		}
		filtro.MetodoPago = &metodo
	}
	filtro.Texto = c.Query("q")

	return filtro, true
}
