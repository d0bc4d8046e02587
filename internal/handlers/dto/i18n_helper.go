package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/handlers/middleware"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/i18n"
)

// T translates key into the request language.
// Usage: dto.T(c, "message.posts_published", map[string]any{"Count": 3})
func T(c *gin.Context, key string, params ...map[string]any) string {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage returns the language negotiated for the request.
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
