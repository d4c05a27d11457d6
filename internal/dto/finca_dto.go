package dto

import "github.com/shopspring/decimal"

// ─── Trabajadores ────────────────────────────────────────────────────────────

type TrabajadorRequest struct {
	NombreCompleto string `json:"nombre_completo" validate:"required,min=3,max=120"`
	Tipo           string `json:"tipo"            validate:"required,oneof=Jornalero Recolector"`
	Activo         *bool  `json:"activo"`
}

type TrabajadorResponse struct {
	ID             uint   `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Tipo           string `json:"tipo"`
	Activo         bool   `json:"activo"`
}

// ─── Lotes ───────────────────────────────────────────────────────────────────

type LoteRequest struct {
	Nombre          string           `json:"nombre"           validate:"required,max=80"`
	Latitud         *float64         `json:"latitud"          validate:"omitempty,latitude"`
	Longitud        *float64         `json:"longitud"         validate:"omitempty,longitude"`
	AreaHectareas   *decimal.Decimal `json:"area_hectareas"   validate:"omitempty,gt=0"`
	PoligonoGeoJSON *string          `json:"poligono_geojson" validate:"omitempty,json"`
}

type LoteResponse struct {
	ID              uint             `json:"id"`
	Nombre          string           `json:"nombre"`
	Latitud         *float64         `json:"latitud,omitempty"`
	Longitud        *float64         `json:"longitud,omitempty"`
	AreaHectareas   *decimal.Decimal `json:"area_hectareas,omitempty"`
	PoligonoGeoJSON *string          `json:"poligono_geojson,omitempty"`
}

// EstadoLoteResponse: Codigo is "fertilizado" | "baja_produccion" | "estable".
type EstadoLoteResponse struct {
	Lote          string          `json:"lote"`
	Codigo        string          `json:"codigo"`
	Descripcion   string          `json:"descripcion"`
	TotalCajuelas decimal.Decimal `json:"total_cajuelas"`
}

type AnalisisSueloRequest struct {
	Fecha     string           `json:"fecha"     validate:"required,datetime=2006-01-02"`
	PH        *decimal.Decimal `json:"ph"        validate:"omitempty,min=0,max=14"`
	Nitrogeno *decimal.Decimal `json:"nitrogeno" validate:"omitempty,min=0"`
	Fosforo   *decimal.Decimal `json:"fosforo"   validate:"omitempty,min=0"`
	Potasio   *decimal.Decimal `json:"potasio"   validate:"omitempty,min=0"`
	Notas     string           `json:"notas"     validate:"max=1000"`
}

type AnalisisSueloResponse struct {
	ID        uint             `json:"id"`
	Lote      string           `json:"lote"`
	Fecha     string           `json:"fecha"`
	PH        *decimal.Decimal `json:"ph,omitempty"`
	Nitrogeno *decimal.Decimal `json:"nitrogeno,omitempty"`
	Fosforo   *decimal.Decimal `json:"fosforo,omitempty"`
	Potasio   *decimal.Decimal `json:"potasio,omitempty"`
	Notas     string           `json:"notas,omitempty"`
}

// ClimaResponse is always returned with 200; Disponible=false when the
// weather provider could not be reached in time.
type ClimaResponse struct {
	Disponible    bool     `json:"disponible"`
	Temperatura   *float64 `json:"temperatura,omitempty"`
	Humedad       *float64 `json:"humedad,omitempty"`
	Precipitacion *float64 `json:"precipitacion,omitempty"`
	Viento        *float64 `json:"viento,omitempty"`
	Observado     string   `json:"observado,omitempty"`
}

// ─── Catálogos ───────────────────────────────────────────────────────────────

type CatalogoRequest struct {
	Nombre string `json:"nombre" validate:"required,max=120"`
}

type CatalogoItemResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// ─── Tarifa ──────────────────────────────────────────────────────────────────

type TarifaRequest struct {
	PagoDia       decimal.Decimal `json:"pago_dia"        validate:"min=0"`
	PagoHoraExtra decimal.Decimal `json:"pago_hora_extra" validate:"min=0"`
}

type TarifaResponse struct {
	PagoDia       decimal.Decimal `json:"pago_dia"`
	PagoHoraExtra decimal.Decimal `json:"pago_hora_extra"`
	Configurada   bool            `json:"configurada"`
}
