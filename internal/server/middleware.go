package server

import (
	"net/http"
	"strings"
	"time"

	model "bidding-client/internal/models"
	"bidding-client/services/bidding/helpers"
	"bidding-client/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// Authenticator resolves a session token to a user
type Authenticator interface {
	Authenticate(token string) (model.UserProfile, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Header(requestIDHeader, requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// TokenAuthMiddleware accepts "Authorization: Token <key>" and stores the user id
// under helpers.UserIDKey. Anything else is answered with 401.
func TokenAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Token ")
		if !ok {
			token = ""
		}

		profile, err := auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			if status != http.StatusUnauthorized {
				status, message = http.StatusUnauthorized, "Invalid token"
			}
			utils.JSONAbort(c, status, err, message)
			utils.Warn("TokenAuthMiddleware: rejected request", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			return
		}

		c.Set(helpers.UserIDKey, profile.ID)
		c.Next()
	}
}
