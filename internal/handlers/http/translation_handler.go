package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/services"
)

type TranslationHandler struct {
	translationService *services.TranslationService
}

func NewTranslationHandler(translationService *services.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

// TranslatePost returns the post in the target language, translating and
// caching it on first request.
// @Summary Translate post
// @Tags translation
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.TranslatePostRequest true "Target language"
// @Success 200 {object} dto.TranslatePostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/translate [post]
func (h *TranslationHandler) TranslatePost(c *gin.Context) {
	var req dto.TranslatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}

	result, err := h.translationService.TranslatePost(c.Request.Context(), c.Param("id"), req.TargetLanguage)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	message := "message.translation_created"
	switch {
	case result.Cached:
		message = "message.translation_exists"
	case result.Fallback:
		message = "message.translation_unavailable"
	}

	c.JSON(http.StatusOK, dto.TranslatePostResponse{
		Success:     true,
		Message:     dto.T(c, message),
		Translation: dto.ToTranslationResponse(result.Translation),
	})
}

// GetPostTranslations returns one stored translation when language is
// given, or every stored translation.
// @Summary Get post translations
// @Tags translation
// @Produce json
// @Param id path string true "Post ID"
// @Param language query string false "en or ar"
// @Success 200 {object} dto.PostTranslationsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/translate [get]
func (h *TranslationHandler) GetPostTranslations(c *gin.Context) {
	post, err := h.translationService.GetTranslations(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	if language := c.Query("language"); language != "" {
		lang, ok := entities.ParseLanguage(language)
		if !ok {
			dto.WriteError(c, errors.ErrInvalidLanguage)
			return
		}
		if t, ok := post.Translation(lang); ok {
			c.JSON(http.StatusOK, dto.PostTranslationResponse{
				Success:     true,
				Translation: dto.ToTranslationResponse(t),
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.PostTranslationsResponse{
		Success:          true,
		OriginalLanguage: string(post.OriginalLanguage),
		Translations:     dto.ToTranslationResponses(post.Translations),
	})
}

// Translate relays ad-hoc text to the translation provider.
// @Summary Translate text
// @Tags translation
// @Accept json
// @Produce json
// @Param request body dto.TranslateRequest true "translate, translateBatch or detect"
// @Success 200 {object} dto.TranslateResponse
// @Success 200 {object} dto.TranslateBatchResponse
// @Success 200 {object} dto.DetectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /translate [post]
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req dto.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteBindingError(c, err)
		return
	}
	ctx := c.Request.Context()

	switch req.Action {
	case dto.ActionTranslate:
		result, err := h.translationService.Translate(ctx, req.Text, req.SourceLanguage, req.TargetLanguage)
		if err != nil {
			dto.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.TranslateResponse{Success: true, Result: result})

	case dto.ActionTranslateBatch:
		results, err := h.translationService.TranslateBatch(ctx, req.Texts, req.SourceLanguage, req.TargetLanguage)
		if err != nil {
			dto.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.TranslateBatchResponse{Success: true, Results: results})

	case dto.ActionDetect:
		language, err := h.translationService.Detect(ctx, req.Text)
		if err != nil {
			dto.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DetectResponse{Success: true, Language: language})

	default:
		dto.WriteError(c, errors.ErrUnsupportedOperation)
	}
}

// TranslateUsage
// @Summary Translation API usage
// @Tags translation
// @Produce json
// @Success 200 {object} dto.UsageResponse
// @Router /translate [get]
func (h *TranslationHandler) TranslateUsage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.UsageResponse{
		Message: "Translation API",
		Usage: map[string]string{
			dto.ActionTranslate:      `POST with { action: "translate", text: "text", targetLanguage: "ar" }`,
			dto.ActionTranslateBatch: `POST with { action: "translateBatch", texts: ["text1", "text2"], targetLanguage: "ar" }`,
			dto.ActionDetect:         `POST with { action: "detect", text: "text" }`,
		},
	})
}

// Languages lists the languages the provider can target.
// @Summary Supported languages
// @Tags translation
// @Produce json
// @Param target query string false "Language used for the names" default(en)
// @Success 200 {object} dto.LanguagesResponse
// @Router /translate/languages [get]
func (h *TranslationHandler) Languages(c *gin.Context) {
	target := c.Query("target")
	if target == "" {
		target = dto.GetLanguage(c)
	}
	c.JSON(http.StatusOK, dto.LanguagesResponse{
		Success:   true,
		Languages: h.translationService.Languages(c.Request.Context(), target),
	})
}
