package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/refdata"
)

// ReferenceHandler serves the static reference catalogues (countries,
// sectors) the assessment form is built from
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// GetCountries returns all supported country profiles
func (h *ReferenceHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": refdata.Countries(),
		"timestamp": time.Now(),
	})
}

// GetCountry returns a single country profile by code
func (h *ReferenceHandler) GetCountry(c *gin.Context) {
	profile := refdata.Lookup(c.Param("code"))
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not supported"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country":   profile,
		"timestamp": time.Now(),
	})
}

// GetSectors returns the supported sector list
func (h *ReferenceHandler) GetSectors(c *gin.Context) {
	sectors := make([]gin.H, 0, len(assessment.AllSectors()))
	for _, s := range assessment.AllSectors() {
		sectors = append(sectors, gin.H{
			"code": s,
			"name": assessment.SectorName(s),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"sectors":   sectors,
		"timestamp": time.Now(),
	})
}
