package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/cadastrodev/usuarios-backend/internal/handlers/middleware"
	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/i18n"
)

// T é um helper para traduzir mensagens no contexto do Gin.
// Uso: dto.T(c, "error.email_ja_cadastrado")
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Sem serviço disponível, a chave é devolvida como está
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "en"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}
