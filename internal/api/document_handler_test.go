package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/joshghal/verdex-webapp-sub002/pkg/config"
)

func documentRouter(maxSize int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDocumentHandler(&config.Config{MaxDocumentSize: maxSize})
	r.POST("/documents/extract", h.ExtractDocument)
	return r
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()
	return buf, writer.FormDataContentType()
}

func TestExtractDocument_PlainText(t *testing.T) {
	router := documentRouter(1 << 20)

	body, contentType := multipartBody(t, "document", "plan.txt",
		"The borrower commits to a 40% reduction in emissions by 2030.")
	req := httptest.NewRequest("POST", "/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Extraction struct {
			Text       string `json:"text"`
			SourceKind string `json:"source_kind"`
			Fields     struct {
				StatedReductionPercent float64 `json:"stated_reduction_percent"`
				TargetYear             int     `json:"target_year"`
			} `json:"fields"`
		} `json:"extraction"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "text", resp.Extraction.SourceKind)
	assert.Equal(t, 40.0, resp.Extraction.Fields.StatedReductionPercent)
	assert.Equal(t, 2030, resp.Extraction.Fields.TargetYear)
}

func TestExtractDocument_HTML(t *testing.T) {
	router := documentRouter(1 << 20)

	body, contentType := multipartBody(t, "document", "plan.html",
		"<html><body><p>A 35% cut in fleet emissions by 2029.</p></body></html>")
	req := httptest.NewRequest("POST", "/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source_kind":"html"`)
	assert.NotContains(t, w.Body.String(), "<p>")
}

func TestExtractDocument_MissingFile(t *testing.T) {
	router := documentRouter(1 << 20)

	body, contentType := multipartBody(t, "wrong_field", "plan.txt", "text")
	req := httptest.NewRequest("POST", "/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractDocument_OversizedFile(t *testing.T) {
	router := documentRouter(16)

	body, contentType := multipartBody(t, "document", "plan.txt",
		"this content is longer than the sixteen byte limit")
	req := httptest.NewRequest("POST", "/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
