package handler

import (
	"net/http"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

type LotesHandler struct{ svc service.LoteService }

func NewLotesHandler(svc service.LoteService) *LotesHandler { return &LotesHandler{svc: svc} }

// Crear godoc
// @Summary Registrar lote
// @Tags lotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.LoteRequest true "Lote"
// @Success 201 {object} dto.LoteResponse
// @Router /v1/lotes [post]
func (h *LotesHandler) Crear(c *gin.Context) {
	var req dto.LoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LotesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LotesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.LoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.Owner(c), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LotesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.Owner(c), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Estado godoc
// @Summary Estado agronómico del lote
// @Description fertilizado (abono en los últimos 30 días), baja_produccion (< 50 cajuelas acumuladas) o estable
// @Tags lotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del lote"
// @Success 200 {object} dto.EstadoLoteResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/lotes/{id}/estado [get]
func (h *LotesHandler) Estado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Estado(c.Request.Context(), middleware.Owner(c), id, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clima godoc
// @Summary Clima actual en las coordenadas del lote
// @Tags lotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del lote"
// @Success 200 {object} dto.ClimaResponse
// @Router /v1/lotes/{id}/clima [get]
func (h *LotesHandler) Clima(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Clima(c.Request.Context(), middleware.Owner(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LotesHandler) RegistrarAnalisis(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AnalisisSueloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarAnalisis(c.Request.Context(), middleware.Owner(c), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LotesHandler) ListarAnalisis(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarAnalisis(c.Request.Context(), middleware.Owner(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
