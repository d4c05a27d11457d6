package handler

import (
	"net/http"

	"finca/internal/dto"
	"finca/internal/middleware"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Catálogos Handler ────────────────────────────────────────────────────────

type CatalogosHandler struct{ svc service.CatalogoService }

func NewCatalogosHandler(svc service.CatalogoService) *CatalogosHandler {
	return &CatalogosHandler{svc: svc}
}

// ListarProductos godoc
// @Summary Catálogo de productos de insumo
// @Tags catalogos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CatalogoItemResponse
// @Router /v1/catalogos/productos [get]
func (h *CatalogosHandler) ListarProductos(c *gin.Context) {
	resp, err := h.svc.ListarProductos(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) AgregarProducto(c *gin.Context) {
	var req dto.CatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarProducto(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) EliminarProducto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarProducto(c.Request.Context(), middleware.Owner(c), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarLabores godoc
// @Summary Catálogo de labores
// @Tags catalogos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CatalogoItemResponse
// @Router /v1/catalogos/labores [get]
func (h *CatalogosHandler) ListarLabores(c *gin.Context) {
	resp, err := h.svc.ListarLabores(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) AgregarLabor(c *gin.Context) {
	var req dto.CatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarLabor(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) EliminarLabor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarLabor(c.Request.Context(), middleware.Owner(c), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Tarifa Handler ───────────────────────────────────────────────────────────

type TarifaHandler struct{ svc service.TarifaService }

func NewTarifaHandler(svc service.TarifaService) *TarifaHandler { return &TarifaHandler{svc: svc} }

// Obtener godoc
// @Summary Tarifa vigente (pago por día y por hora extra)
// @Tags tarifa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TarifaResponse
// @Router /v1/tarifa [get]
func (h *TarifaHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar godoc
// @Summary Guardar tarifa
// @Tags tarifa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TarifaRequest true "Tarifa"
// @Success 200 {object} dto.TarifaResponse
// @Router /v1/tarifa [put]
func (h *TarifaHandler) Guardar(c *gin.Context) {
	var req dto.TarifaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
