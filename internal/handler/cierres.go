package handler

import (
	"net/http"
	"path/filepath"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

// CierresHandler records a period close from the aggregation computed at
// request time. The stored totals are never recomputed.
type CierresHandler struct {
	cierres  service.CierreService
	reportes service.ReporteService
}

func NewCierresHandler(cierres service.CierreService, reportes service.ReporteService) *CierresHandler {
	return &CierresHandler{cierres: cierres, reportes: reportes}
}

// Crear godoc
// @Summary Cerrar un período
// @Tags cierres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearCierreRequest true "Período"
// @Success 201 {object} dto.CierreResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cierres [post]
func (h *CierresHandler) Crear(c *gin.Context) {
	var req dto.CrearCierreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	ctx := c.Request.Context()

	resumen, err := h.reportes.ResumenPeriodo(ctx, claims.Owner, dto.RangoQuery{Desde: req.Desde, Hasta: req.Hasta})
	if err != nil {
		responderError(c, err)
		return
	}
	resp, err := h.cierres.Registrar(ctx, claims.Owner, claims.Username, *resumen)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Historial de cierres, el más reciente primero
// @Tags cierres
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CierreResponse
// @Router /v1/cierres [get]
func (h *CierresHandler) Listar(c *gin.Context) {
	resp, err := h.cierres.Listar(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CierresHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.cierres.Obtener(c.Request.Context(), middleware.Owner(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF godoc
// @Summary Cierre en PDF
// @Tags cierres
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "ID del cierre"
// @Success 200 {file} file
// @Failure 404 {object} apierror.APIError
// @Router /v1/cierres/{id}/pdf [get]
func (h *CierresHandler) PDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	path, err := h.cierres.GenerarPDF(c.Request.Context(), middleware.Owner(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// Enviar godoc
// @Summary Enviar el cierre por correo
// @Description El PDF se genera y envía en segundo plano.
// @Tags cierres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del cierre"
// @Param body body dto.EnviarCierreRequest true "Destinatario"
// @Success 202 {object} map[string]string
// @Router /v1/cierres/{id}/enviar [post]
func (h *CierresHandler) Enviar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarCierreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.cierres.Enviar(c.Request.Context(), middleware.Owner(c), id, req.Email); err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"estado": "encolado"})
}
