package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição.
// Prioridade: query parameter ?lang=pt-BR, depois Accept-Language,
// por fim o idioma padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage escolhe o melhor idioma suportado do header.
// Exemplo: "pt-BR,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		// O peso (;q=0.9) não importa; a ordem do header já é a preferência
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		// Variação sem região (pt-BR -> pt)
		if idx := strings.Index(lang, "-"); idx != -1 {
			if base := lang[:idx]; m.i18nService.IsLanguageSupported(base) {
				return base
			}
		}
	}

	return ""
}
