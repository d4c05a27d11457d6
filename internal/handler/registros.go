package handler

import (
	"net/http"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Jornadas Handler ─────────────────────────────────────────────────────────

type JornadasHandler struct{ svc service.JornadaService }

func NewJornadasHandler(svc service.JornadaService) *JornadasHandler {
	return &JornadasHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar jornada de trabajo
// @Tags jornadas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.JornadaRequest true "Jornada"
// @Success 201 {object} dto.JornadaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/jornadas [post]
func (h *JornadasHandler) Crear(c *gin.Context) {
	var req dto.JornadaRequest
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

// Listar godoc
// @Summary Listar jornadas
// @Tags jornadas
// @Produce json
// @Security BearerAuth
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Param trabajador query string false "Trabajador"
// @Param lote query string false "Lote"
// @Success 200 {array} dto.JornadaResponse
// @Router /v1/jornadas [get]
func (h *JornadasHandler) Listar(c *gin.Context) {
	var f dto.RegistroFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.Owner(c), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JornadasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.JornadaRequest
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

func (h *JornadasHandler) Eliminar(c *gin.Context) {
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

// ── Recolecciones Handler ────────────────────────────────────────────────────

type RecoleccionesHandler struct{ svc service.RecoleccionService }

func NewRecoleccionesHandler(svc service.RecoleccionService) *RecoleccionesHandler {
	return &RecoleccionesHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar recolección
// @Tags recolecciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RecoleccionRequest true "Recolección"
// @Success 201 {object} dto.RecoleccionResponse
// @Router /v1/recolecciones [post]
func (h *RecoleccionesHandler) Crear(c *gin.Context) {
	var req dto.RecoleccionRequest
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

// CrearLote godoc
// @Summary Registrar la cosecha de un día en una sola transacción
// @Description Si alguna fila es inválida no se registra ninguna.
// @Tags recolecciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RecoleccionLoteRequest true "Filas"
// @Success 201 {object} dto.RecoleccionLoteResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/recolecciones/lote [post]
func (h *RecoleccionesHandler) CrearLote(c *gin.Context) {
	var req dto.RecoleccionLoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearLote(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RecoleccionesHandler) Listar(c *gin.Context) {
	var f dto.RegistroFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.Owner(c), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecoleccionesHandler) Eliminar(c *gin.Context) {
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

// ── Insumos Handler ──────────────────────────────────────────────────────────

type InsumosHandler struct{ svc service.InsumoService }

func NewInsumosHandler(svc service.InsumoService) *InsumosHandler {
	return &InsumosHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar aplicación de insumo
// @Tags insumos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.InsumoRequest true "Insumo"
// @Success 201 {object} dto.InsumoResponse
// @Router /v1/insumos [post]
func (h *InsumosHandler) Crear(c *gin.Context) {
	var req dto.InsumoRequest
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

func (h *InsumosHandler) Listar(c *gin.Context) {
	var f dto.RegistroFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.Owner(c), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Eliminar(c *gin.Context) {
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
