package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docquiz/internal/api"
	"docquiz/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "segredo-so-para-o-middleware"

func protectedRouter(verifier *auth.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protegido", api.AuthRequired(verifier), func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"userId": userID.String()})
	})
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	verifier := auth.NewVerifier()
	userID := uuid.New()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	t.Run("ValidBearer", func(t *testing.T) {
		rec := get(protectedRouter(verifier), "Bearer "+signed)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := get(protectedRouter(verifier), "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("MalformedToken", func(t *testing.T) {
		rec := get(protectedRouter(verifier), "Bearer abc.def.ghi")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("VerifierNotConfigured", func(t *testing.T) {
		rec := get(protectedRouter(nil), "Bearer "+signed)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}
	})
}
