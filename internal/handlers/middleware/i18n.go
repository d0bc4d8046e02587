package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/renaspress/renaspress-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey holds the negotiated language in the gin context.
	LanguageContextKey = "language"
	// I18nServiceContextKey holds the *i18n.Service in the gin context.
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware picks the response language of each request.
type I18nMiddleware struct {
	i18nService *i18n.Service
	tags        []language.Tag
	matcher     language.Matcher
}

func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	// The default language goes first so the matcher falls back to it.
	supported := []string{i18nService.GetDefaultLanguage()}
	for _, lang := range i18nService.GetSupportedLanguages() {
		if lang != supported[0] {
			supported = append(supported, lang)
		}
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.Make(lang))
	}

	return &I18nMiddleware{
		i18nService: i18nService,
		tags:        tags,
		matcher:     language.NewMatcher(tags),
	}
}

// DetectLanguage resolves the language in this order:
//  1. ?lang= query parameter
//  2. Accept-Language header
//  3. the default language
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
			lang = queryLang
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// parseAcceptLanguage returns the best supported language for the header, or
// "" when nothing matches. "ar-SA,ar;q=0.9,en;q=0.8" gives "ar".
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return ""
	}

	_, idx, confidence := m.matcher.Match(prefs...)
	if confidence == language.No {
		return ""
	}

	base, _ := m.tags[idx].Base()
	lang := base.String()
	if !m.i18nService.IsLanguageSupported(lang) {
		return ""
	}
	return lang
}
