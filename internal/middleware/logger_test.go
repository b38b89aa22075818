package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"techinvoice/internal/middleware"
)

func requestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.GET("/test", func(c *gin.Context) {
		id, _ := c.Get(middleware.ContextKeyRequestID)
		c.JSON(http.StatusOK, gin.H{"request_id": id})
	})
	return r
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_KeepsIncomingID(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "upstream-id-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-42", w.Header().Get("X-Request-ID"))
}
