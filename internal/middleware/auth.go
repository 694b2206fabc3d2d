package middleware

import (
	"net/http"
	"strings"

	"tokopos/internal/apierror"
	"tokopos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
	TokoIDKey = "toko_id"
)

// SesiToko validates the store session token on every store-scoped route and
// puts the toko id in the context. There are no user accounts; the token
// proves the caller picked a store (and knew its PIN, if it has one).
func SesiToko(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesi toko diperlukan"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &service.SesiTokoClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token tidak valid atau kedaluwarsa"))
			return
		}

		tokoID, err := uuid.Parse(claims.TokoID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token tidak valid atau kedaluwarsa"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokoIDKey, tokoID)
		c.Next()
	}
}

// GetTokoID retrieves the store id set by SesiToko.
func GetTokoID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet(TokoIDKey).(uuid.UUID)
	return id
}

// GetClaims retrieves the typed session claims from the Gin context.
func GetClaims(c *gin.Context) *service.SesiTokoClaims {
	claims, _ := c.MustGet(ClaimsKey).(*service.SesiTokoClaims)
	return claims
}
