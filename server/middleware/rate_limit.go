package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// GinRateLimitMiddleware ограничивает частоту запросов к тяжелым эндпоинтам
// анализа. Лимитер общий на процесс: анализ синхронный и одна нагрузка
// разделяется всеми клиентами.
func GinRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
