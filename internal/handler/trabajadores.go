package handler

import (
	"net/http"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

type TrabajadoresHandler struct{ svc service.TrabajadorService }

func NewTrabajadoresHandler(svc service.TrabajadorService) *TrabajadoresHandler {
	return &TrabajadoresHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar trabajador
// @Tags trabajadores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TrabajadorRequest true "Trabajador"
// @Success 201 {object} dto.TrabajadorResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/trabajadores [post]
func (h *TrabajadoresHandler) Crear(c *gin.Context) {
	var req dto.TrabajadorRequest
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
// @Summary Listar trabajadores
// @Tags trabajadores
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "Jornalero | Recolector"
// @Param incluir_inactivos query bool false "Incluir inactivos"
// @Success 200 {array} dto.TrabajadorResponse
// @Router /v1/trabajadores [get]
func (h *TrabajadoresHandler) Listar(c *gin.Context) {
	incluir := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), middleware.Owner(c), c.Query("tipo"), incluir)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrabajadoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TrabajadorRequest
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

func (h *TrabajadoresHandler) Eliminar(c *gin.Context) {
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
