package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ActorKey = "actor"

// ActorMiddleware attributes requests to the user in an access token, read
// from the access_token cookie or a Bearer header. Requests without a token
// pass through anonymously; a token that fails verification is rejected.
// With an empty secret tokens are ignored.
func ActorMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		raw := tokenFromRequest(c)
		if raw == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !token.Valid {
			writeError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}

		claims, _ := token.Claims.(jwt.MapClaims)
		actor, ok := actorFromClaims(claims)
		if !ok {
			writeError(c, http.StatusUnauthorized, "invalid user ID", nil)
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if v, err := c.Cookie("access_token"); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func actorFromClaims(claims jwt.MapClaims) (string, bool) {
	val, ok := claims["user_id"]
	if !ok {
		val, ok = claims["sub"]
	}
	if !ok {
		return "", false
	}

	switch v := val.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	default:
		return "", false
	}
}

// Actor returns the authenticated actor, or "" for anonymous requests.
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
