package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

// Locales holds the bundled message catalogs, one JSON object per language.
//
//go:embed locales/*.json
var Locales embed.FS

// Service resolves message IDs to localized text.
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewService loads every *.json catalog found in localesDir.
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewBundledService loads the catalogs compiled into the binary.
func NewBundledService(defaultLang string) (*Service, error) {
	return NewServiceFS(Locales, "locales", defaultLang)
}

// NewServiceFS loads every *.json catalog under dir in fsys. The file name
// without extension is the language code.
func NewServiceFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = messages
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T translates key into lang, falling back to the default language and then
// to the key itself. Messages may use Go templates ({{.Count}}) filled from
// params[0].
func (s *Service) T(lang, key string, params ...map[string]any) string {
	s.mu.RLock()
	message, msgLang := s.lookup(lang, key)
	s.mu.RUnlock()

	if message == "" {
		return key
	}
	if len(params) == 0 || params[0] == nil || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := s.template(msgLang, key, message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// lookup must be called with the read lock held.
func (s *Service) lookup(lang, key string) (string, string) {
	if msg, ok := s.translations[lang][key]; ok {
		return msg, lang
	}
	if msg, ok := s.translations[s.defaultLanguage][key]; ok {
		return msg, s.defaultLanguage
	}
	return "", ""
}

// template parses a message once and caches it per language and key.
func (s *Service) template(lang, key, message string) (*template.Template, error) {
	cacheKey := lang + "\x00" + key

	s.mu.RLock()
	tmpl, ok := s.templates[cacheKey]
	s.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.New(key).Option("missingkey=zero").Parse(message)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.templates[cacheKey] = tmpl
	s.mu.Unlock()
	return tmpl, nil
}

func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages returns the loaded language codes, sorted.
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
