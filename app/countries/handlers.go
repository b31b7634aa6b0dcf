package countries

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/models"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service Service
}

// NewHandler creates a new country handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Refresh godoc
// @Summary Refresh country data
// @Description Pull the country directory and exchange rates, rebuild every record and regenerate the summary image
// @Tags countries
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=RefreshResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	result, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			api.ValidationErrorResponse(c, verr.Fields)
		case errors.Is(err, models.ErrCountrySourceUnavailable),
			errors.Is(err, models.ErrRateSourceUnavailable):
			api.ServiceUnavailableResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to refresh countries")
		}
		return
	}

	api.SuccessResponse(c, 200, result.Message, result)
}

// ListCountries godoc
// @Summary List countries
// @Description Get stored country records, optionally filtered by region or currency code and sorted by estimated GDP
// @Tags countries
// @Accept json
// @Produce json
// @Param region query string false "Region filter"
// @Param currency query string false "Currency code filter"
// @Param sort query string false "Sort order" Enums(gdp_desc)
// @Success 200 {object} api.Response{data=[]CountryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) ListCountries(c *gin.Context) {
	var req ListCountriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	countries, err := h.service.ListCountries(c.Request.Context(), &req)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountryByName godoc
// @Summary Get country by name
// @Description Get one country record, matched case-insensitively by name
// @Tags countries
// @Accept json
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} api.Response{data=CountryResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{name} [get]
func (h *Handler) GetCountryByName(c *gin.Context) {
	name := c.Param("name")

	country, err := h.service.GetCountryByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch country")
		return
	}

	api.SuccessResponse(c, 200, "Country retrieved successfully", country)
}

// DeleteCountryByName godoc
// @Summary Delete country by name
// @Description Delete one country record, matched case-insensitively by name, and return the deleted record
// @Tags countries
// @Accept json
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} api.Response{data=CountryResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{name} [delete]
func (h *Handler) DeleteCountryByName(c *gin.Context) {
	name := c.Param("name")

	country, err := h.service.DeleteCountryByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.InternalErrorResponse(c, "Failed to delete country")
		return
	}

	api.DeletedResponse(c, "Country deleted successfully", country)
}

// Status godoc
// @Summary Store status
// @Description Report the total record count and the most recent refresh timestamp
// @Tags countries
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=StatusResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/status [get]
func (h *Handler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch status")
		return
	}

	api.SuccessResponse(c, 200, "Status retrieved successfully", status)
}

// SummaryImage godoc
// @Summary Summary image
// @Description Return the cached summary snapshot rendered by the last successful refresh
// @Tags countries
// @Produce png
// @Success 200 {file} byte
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/image [get]
func (h *Handler) SummaryImage(c *gin.Context) {
	artifact, err := h.service.SummaryImage(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrSummaryNotFound) {
			api.NotFoundResponse(c, "Summary image")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch summary image")
		return
	}

	c.Data(200, "image/png", artifact)
}
