// Package translation is the Google Cloud Translation (v2 REST) client.
package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domainerrors "github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

// placeholderKey is the value shipped in example env files.
const placeholderKey = "your-google-translate-api-key-here"

// GoogleTranslator implements ports.Translator.
type GoogleTranslator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  ports.Logger
}

func NewGoogleTranslator(cfg config.TranslationConfig, logger ports.Logger) *GoogleTranslator {
	key := cfg.APIKey
	if key == placeholderKey {
		key = ""
	}
	return &GoogleTranslator{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  key,
		logger:  logger,
	}
}

var _ ports.Translator = (*GoogleTranslator)(nil)

// Enabled reports whether an API key is configured.
func (g *GoogleTranslator) Enabled() bool {
	return g.apiKey != ""
}

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Source string   `json:"source,omitempty"`
	Format string   `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
		} `json:"detections"`
	} `json:"data"`
}

type languagesResponse struct {
	Data struct {
		Languages []struct {
			Language string `json:"language"`
			Name     string `json:"name"`
		} `json:"languages"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GoogleTranslator) Translate(ctx context.Context, texts []string, source, target string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}
	if !g.Enabled() {
		metrics.TranslationRequests.WithLabelValues("translate", "disabled").Inc()
		return nil, domainerrors.ErrTranslatorDisabled
	}

	var out translateResponse
	err := g.do(ctx, http.MethodPost, g.baseURL, nil, translateRequest{
		Q:      texts,
		Target: target,
		Source: source,
		Format: "html",
	}, &out)
	if err != nil {
		metrics.TranslationRequests.WithLabelValues("translate", "error").Inc()
		return nil, err
	}

	if len(out.Data.Translations) != len(texts) {
		metrics.TranslationRequests.WithLabelValues("translate", "error").Inc()
		return nil, domainerrors.ErrTranslationFailed.Wrap(
			fmt.Errorf("expected %d translations, got %d", len(texts), len(out.Data.Translations)))
	}

	result := make([]string, len(texts))
	for i, t := range out.Data.Translations {
		result[i] = t.TranslatedText
	}
	metrics.TranslationRequests.WithLabelValues("translate", "ok").Inc()
	return result, nil
}

func (g *GoogleTranslator) Detect(ctx context.Context, text string) (string, error) {
	if !g.Enabled() {
		metrics.TranslationRequests.WithLabelValues("detect", "disabled").Inc()
		return "", domainerrors.ErrTranslatorDisabled
	}

	var out detectResponse
	if err := g.do(ctx, http.MethodPost, g.baseURL+"/detect", nil, map[string][]string{"q": {text}}, &out); err != nil {
		metrics.TranslationRequests.WithLabelValues("detect", "error").Inc()
		return "", err
	}
	if len(out.Data.Detections) == 0 || len(out.Data.Detections[0]) == 0 {
		metrics.TranslationRequests.WithLabelValues("detect", "error").Inc()
		return "", domainerrors.ErrTranslationFailed
	}

	metrics.TranslationRequests.WithLabelValues("detect", "ok").Inc()
	return out.Data.Detections[0][0].Language, nil
}

func (g *GoogleTranslator) Languages(ctx context.Context, target string) ([]ports.Language, error) {
	if !g.Enabled() {
		metrics.TranslationRequests.WithLabelValues("languages", "disabled").Inc()
		return nil, domainerrors.ErrTranslatorDisabled
	}

	query := url.Values{}
	if target != "" {
		query.Set("target", target)
	}

	var out languagesResponse
	if err := g.do(ctx, http.MethodGet, g.baseURL+"/languages", query, nil, &out); err != nil {
		metrics.TranslationRequests.WithLabelValues("languages", "error").Inc()
		return nil, err
	}

	langs := make([]ports.Language, len(out.Data.Languages))
	for i, l := range out.Data.Languages {
		langs[i] = ports.Language{Code: l.Language, Name: l.Name}
	}
	metrics.TranslationRequests.WithLabelValues("languages", "ok").Inc()
	return langs, nil
}

// do sends one API call. The key travels as a query parameter.
func (g *GoogleTranslator) do(ctx context.Context, method, endpoint string, query url.Values, in, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("key", g.apiKey)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint+"?"+query.Encode(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domainerrors.ErrTranslationFailed.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&apiErr)
		g.logger.Warn("translation provider error",
			"status", resp.StatusCode,
			"message", apiErr.Error.Message,
		)
		return domainerrors.ErrTranslationFailed.Wrap(
			fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error.Message))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrTranslationFailed.Wrap(err)
	}
	return nil
}
