package handlers

import (
	"net/http"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/gin-gonic/gin"
)

// refDataHandler serves the static reference data used by the dashboard.
type refDataHandler struct {
	currencyService ports.CurrencySvc
}

func newRefDataHandler(cs ports.CurrencySvc) *refDataHandler {
	return &refDataHandler{currencyService: cs}
}

// RegisterRefDataRoutes registers routes for currencies and categories.
func RegisterRefDataRoutes(rg *gin.RouterGroup, currencyService ports.CurrencySvc) {
	h := newRefDataHandler(currencyService)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/categories", h.listCategories)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Tags refdata
// @Produce  json
// @Success 200 {array} domain.Currency
// @Security BearerAuth
// @Router /currencies [get]
func (h *refDataHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, h.currencyService.ListCurrencies())
}

// listCategories godoc
// @Summary List income categories
// @Tags refdata
// @Produce  json
// @Success 200 {array} domain.Category
// @Security BearerAuth
// @Router /categories [get]
func (h *refDataHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.DefaultCategories)
}
