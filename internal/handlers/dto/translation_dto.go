package dto

import (
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/services"
)

// Ad-hoc translation actions.
const (
	ActionTranslate      = "translate"
	ActionTranslateBatch = "translateBatch"
	ActionDetect         = "detect"
)

type TranslatePostRequest struct {
	TargetLanguage string `json:"targetLanguage" binding:"required,language"`
}

type TranslatePostResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Translation TranslationResponse `json:"translation"`
}

type PostTranslationResponse struct {
	Success     bool                `json:"success"`
	Translation TranslationResponse `json:"translation"`
}

type PostTranslationsResponse struct {
	Success          bool                           `json:"success"`
	OriginalLanguage string                         `json:"originalLanguage"`
	Translations     map[string]TranslationResponse `json:"translations"`
}

// TranslateRequest drives POST /translate. Target is required for the
// translate actions, not for detect.
type TranslateRequest struct {
	Action         string   `json:"action" binding:"required,oneof=translate translateBatch detect"`
	Text           string   `json:"text"`
	Texts          []string `json:"texts"`
	TargetLanguage string   `json:"targetLanguage"`
	SourceLanguage string   `json:"sourceLanguage"`
}

type TranslateResponse struct {
	Success bool                     `json:"success"`
	Result  services.TextTranslation `json:"result"`
}

type TranslateBatchResponse struct {
	Success bool                       `json:"success"`
	Results []services.TextTranslation `json:"results"`
}

type DetectResponse struct {
	Success  bool   `json:"success"`
	Language string `json:"language"`
}

type LanguagesResponse struct {
	Success   bool             `json:"success"`
	Languages []ports.Language `json:"languages"`
}

// UsageResponse documents a relay endpoint on GET.
type UsageResponse struct {
	Message string            `json:"message"`
	Usage   map[string]string `json:"usage"`
}
