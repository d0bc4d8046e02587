package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/logging"
)

func newTestTranslator(baseURL, key string) *GoogleTranslator {
	return NewGoogleTranslator(config.TranslationConfig{
		APIKey:  key,
		BaseURL: baseURL,
		Timeout: time.Second,
	}, logging.NewDiscardLogger())
}

func TestGoogleTranslator_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2", r.URL.Path)
		assert.Equal(t, "k1", r.URL.Query().Get("key"))

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ar", req.Target)
		assert.Equal(t, "html", req.Format)
		assert.Equal(t, []string{"Hello", "<p>World</p>"}, req.Q)

		_, _ = w.Write([]byte(`{"data":{"translations":[
			{"translatedText":"مرحبا","detectedSourceLanguage":"en"},
			{"translatedText":"<p>العالم</p>","detectedSourceLanguage":"en"}]}}`))
	}))
	defer server.Close()

	got, err := newTestTranslator(server.URL+"/v2", "k1").
		Translate(context.Background(), []string{"Hello", "<p>World</p>"}, "", "ar")
	require.NoError(t, err)
	assert.Equal(t, []string{"مرحبا", "<p>العالم</p>"}, got)
}

func TestGoogleTranslator_Disabled(t *testing.T) {
	tr := newTestTranslator("http://unused", "")
	assert.False(t, tr.Enabled())

	_, err := tr.Translate(context.Background(), []string{"x"}, "", "ar")
	assert.ErrorIs(t, err, domainerrors.ErrTranslatorDisabled)

	_, err = tr.Detect(context.Background(), "x")
	assert.ErrorIs(t, err, domainerrors.ErrTranslatorDisabled)

	assert.False(t, newTestTranslator("http://unused", placeholderKey).Enabled())
}

func TestGoogleTranslator_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	}))
	defer server.Close()

	_, err := newTestTranslator(server.URL, "bad").Translate(context.Background(), []string{"x"}, "", "ar")
	assert.ErrorIs(t, err, domainerrors.ErrTranslationFailed)
}

func TestGoogleTranslator_CountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"a"}]}}`))
	}))
	defer server.Close()

	_, err := newTestTranslator(server.URL, "k").Translate(context.Background(), []string{"x", "y"}, "", "ar")
	assert.ErrorIs(t, err, domainerrors.ErrTranslationFailed)
}

func TestGoogleTranslator_EmptyBatch(t *testing.T) {
	got, err := newTestTranslator("http://unused", "").Translate(context.Background(), nil, "", "ar")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGoogleTranslator_Detect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"detections":[[{"language":"ar","confidence":0.98}]]}}`))
	}))
	defer server.Close()

	lang, err := newTestTranslator(server.URL, "k").Detect(context.Background(), "مرحبا")
	require.NoError(t, err)
	assert.Equal(t, "ar", lang)
}

func TestGoogleTranslator_Languages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/languages", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("target"))
		_, _ = w.Write([]byte(`{"data":{"languages":[{"language":"ar","name":"Arabic"},{"language":"en","name":"English"}]}}`))
	}))
	defer server.Close()

	langs, err := newTestTranslator(server.URL, "k").Languages(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, "ar", langs[0].Code)
	assert.Equal(t, "Arabic", langs[0].Name)
}
