package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/roombooking/internal/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

type TokenParser interface {
	ParseValidate(tokenStr string) (*auth.Claims, error)
}

// JWTAuth rejects requests without a valid bearer token and stores the caller's id.
func JWTAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := parser.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func userIDFrom(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
