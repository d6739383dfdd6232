package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin, method and header, with credentials. Browsers
// reject "*" alongside credentials, so the request origin and the preflight's
// requested headers are echoed back instead.
// Suitable for local and development deployments only.
func CORS() gin.HandlerFunc {
	// AllowHeaders stays empty so the preflight keeps the echoed header below.
	handler := cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowCredentials: true,
		AllowWebSockets:  true,
		MaxAge:           10 * time.Minute,
	})

	return func(c *gin.Context) {
		if isPreflight(c.Request) {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}
