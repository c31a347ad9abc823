package middleware

import (
	"github.com/gin-gonic/gin"

	"ticket-slash/internal/translator"
)

const langKey = "lang"

// LanguageMiddleware stores the Accept-Language header for handlers, falling back to fallback.
// The raw header is kept; the translator does the matching.
func LanguageMiddleware(fallback string) gin.HandlerFunc {
	if fallback == "" {
		fallback = translator.LanguageEn
	}
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = fallback
		}
		c.Set(langKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
