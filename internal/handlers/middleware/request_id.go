package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header de correlação aceito e devolvido
	RequestIDHeader = "X-Request-Id"
	// RequestIDContextKey é a chave do identificador no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID garante um identificador único por requisição: reaproveita
// o header do chamador quando presente, gera um uuid quando não.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
