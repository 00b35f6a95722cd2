package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"gw2-tracker/internal/catalog"
	"gw2-tracker/internal/currency"
	"gw2-tracker/internal/services/history"
	"gw2-tracker/internal/services/valuation"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	history   *history.Service
	valuation *valuation.Service
}

func SetupRoutes(r *gin.RouterGroup, hist *history.Service, val *valuation.Service) *APIHandler {
	handler := &APIHandler{
		history:   hist,
		valuation: val,
	}

	r.GET("/history", handler.GetHistory)
	r.GET("/price", handler.GetPrice)
	r.GET("/profits", handler.GetProfits)

	// One endpoint per craft in the valuation catalog
	for _, craftID := range val.Crafts() {
		r.GET("/"+craftID, handler.craftHandler(craftID))
	}

	return handler
}

// GetHistory returns the trailing 24h of stored snapshots for one craft.
// GET /api/v1/history?item_name=scholar_rune
func (h *APIHandler) GetHistory(c *gin.Context) {
	craftID := strings.TrimSpace(c.Query("item_name"))
	if craftID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing item_name"})
		return
	}

	records, err := h.history.GetHistory(craftID)
	if err != nil {
		log.Printf("[api] history query failed for %q: %v", craftID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPrice returns raw and derived price fields for a single item.
// GET /api/v1/price?item_id=19721
func (h *APIHandler) GetPrice(c *gin.Context) {
	itemID, err := strconv.Atoi(strings.TrimSpace(c.Query("item_id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_id"})
		return
	}

	data, err := h.valuation.ItemQuote(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream error"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetProfits aggregates the profit figure of every profit craft. Crafts
// whose valuation fails are reported alongside the successes instead of
// blanking the whole response.
func (h *APIHandler) GetProfits(c *gin.Context) {
	profits := map[string]float64{}
	failures := map[string]string{}

	for _, craftID := range catalog.ProfitCrafts {
		fields, err := h.valuation.Valuation(c.Request.Context(), craftID)
		if err != nil {
			log.Printf("[api] profits: %s failed: %v", craftID, err)
			failures[craftID] = "valuation unavailable"
			continue
		}
		copper := currency.FieldsToCopper(fields, "profit")
		for k, v := range currency.Fields(craftID+"_profit", copper) {
			profits[k] = v
		}
	}

	c.JSON(http.StatusOK, gin.H{"profits": profits, "errors": failures})
}

func (h *APIHandler) craftHandler(craftID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := h.valuation.Valuation(c.Request.Context(), craftID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream error"})
			return
		}
		c.JSON(http.StatusOK, fields)
	}
}
