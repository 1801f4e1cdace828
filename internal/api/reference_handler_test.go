package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func referenceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReferenceHandler()
	r.GET("/reference/countries", h.GetCountries)
	r.GET("/reference/countries/:code", h.GetCountry)
	r.GET("/reference/sectors", h.GetSectors)
	return r
}

func TestGetCountries(t *testing.T) {
	router := referenceRouter()

	req := httptest.NewRequest("GET", "/reference/countries", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Countries []map[string]interface{} `json:"countries"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Countries, 12)
}

func TestGetCountry(t *testing.T) {
	router := referenceRouter()

	req := httptest.NewRequest("GET", "/reference/countries/kenya", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kenya")
	assert.Contains(t, w.Body.String(), "East Africa")
}

func TestGetCountry_Unsupported(t *testing.T) {
	router := referenceRouter()

	req := httptest.NewRequest("GET", "/reference/countries/atlantis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSectors(t *testing.T) {
	router := referenceRouter()

	req := httptest.NewRequest("GET", "/reference/sectors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sectors []map[string]string `json:"sectors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Sectors, 9)
	assert.Equal(t, "energy", resp.Sectors[0]["code"])
}
