package handler

import (
	"net/http"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanesHandler struct{ svc service.PlanService }

func NewPlanesHandler(svc service.PlanService) *PlanesHandler { return &PlanesHandler{svc: svc} }

// Crear godoc
// @Summary Planificar una tarea
// @Tags planes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearPlanRequest true "Plan"
// @Success 201 {object} dto.PlanResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planes [post]
func (h *PlanesHandler) Crear(c *gin.Context) {
	var req dto.CrearPlanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.Owner(c), req, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Calendario de planes
// @Tags planes
// @Produce json
// @Security BearerAuth
// @Param desde query string true "YYYY-MM-DD"
// @Param hasta query string true "YYYY-MM-DD"
// @Param estado query string false "pendiente | realizado"
// @Success 200 {array} dto.PlanResponse
// @Router /v1/planes [get]
func (h *PlanesHandler) Listar(c *gin.Context) {
	var f dto.PlanFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.Owner(c), f, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlanesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPlanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.Owner(c), id, req, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Posponer godoc
// @Summary Posponer un plan pendiente
// @Tags planes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del plan"
// @Param body body dto.PosponerPlanRequest true "Días"
// @Success 200 {object} dto.PlanResponse
// @Router /v1/planes/{id}/posponer [post]
func (h *PlanesHandler) Posponer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PosponerPlanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Posponer(c.Request.Context(), middleware.Owner(c), id, req.Dias, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Completar godoc
// @Summary Marcar un plan como realizado
// @Description Genera la siguiente ocurrencia si el plan es recurrente y registra la jornada si es de tipo Jornada.
// @Tags planes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del plan"
// @Success 200 {object} dto.CompletarPlanResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planes/{id}/completar [post]
func (h *PlanesHandler) Completar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Completar(c.Request.Context(), middleware.Owner(c), id, hoy())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlanesHandler) Eliminar(c *gin.Context) {
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
