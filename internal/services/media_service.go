package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

const (
	MaxImageSize int64 = 10 << 20
	MaxVideoSize int64 = 100 << 20
)

// mediaRule is the upload policy of one media kind.
type mediaRule struct {
	folder       string
	idPrefix     string
	defaultExt   string
	maxSize      int64
	limitLabel   string
	allowed      []string
	allowedLabel string
}

var mediaRules = map[entities.MediaType]mediaRule{
	entities.MediaImage: {
		folder:       "images",
		idPrefix:     "img_",
		defaultExt:   "jpg",
		maxSize:      MaxImageSize,
		limitLabel:   "10MB",
		allowed:      []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
		allowedLabel: "JPEG, PNG, GIF, WebP",
	},
	entities.MediaVideo: {
		folder:       "videos",
		idPrefix:     "video_",
		defaultExt:   "mp4",
		maxSize:      MaxVideoSize,
		limitLabel:   "100MB",
		allowed:      []string{"video/mp4", "video/webm", "video/ogg", "video/avi", "video/mov"},
		allowedLabel: "MP4, WebM, OGG, AVI, MOV",
	},
}

// UploadLimit returns the size cap of kind in bytes and as a label, or zero
// for unknown kinds.
func UploadLimit(kind entities.MediaType) (int64, string) {
	rule, ok := mediaRules[kind]
	if !ok {
		return 0, ""
	}
	return rule.maxSize, rule.limitLabel
}

// UploadFile is a file received from a multipart form.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult describes a stored file.
type UploadResult struct {
	ID          string
	URL         string
	Filename    string
	ContentType string
	Size        int64
}

// MediaService validates uploads and relays them to object storage.
type MediaService struct {
	storage ports.ObjectStorage
	logger  ports.Logger
	now     func() time.Time
}

// NewMediaService accepts a nil storage; uploads then fail with
// ErrStorageNotConfigured.
func NewMediaService(storage ports.ObjectStorage, logger ports.Logger) *MediaService {
	return &MediaService{
		storage: storage,
		logger:  logger,
		now:     clock,
	}
}

func (s *MediaService) Upload(ctx context.Context, kind entities.MediaType, file *UploadFile) (*UploadResult, error) {
	rule, ok := mediaRules[kind]
	if !ok {
		return nil, errors.ErrUnsupportedMediaType.WithParams(map[string]any{"Allowed": "image, video"})
	}
	if file == nil || file.Body == nil {
		return nil, errors.ErrNoFile
	}

	if !allowedType(rule.allowed, file.ContentType) {
		s.reject(kind, "type")
		return nil, errors.ErrUnsupportedMediaType.WithParams(map[string]any{"Allowed": rule.allowedLabel})
	}
	if file.Size > rule.maxSize {
		s.reject(kind, "size")
		return nil, errors.ErrFileTooLarge.WithParams(map[string]any{"Limit": rule.limitLabel})
	}
	if s.storage == nil {
		s.reject(kind, "unconfigured")
		return nil, errors.ErrStorageNotConfigured
	}

	ts := s.now().UnixMilli()
	key := fmt.Sprintf("%s/%d_%s.%s", rule.folder, ts, randomSuffix(), extension(file.Filename, rule.defaultExt))

	url, err := s.storage.Put(ctx, key, file.ContentType, file.Body, file.Size)
	if err != nil {
		s.reject(kind, "storage")
		s.logger.Error("media upload failed", "kind", kind, "key", key, "error", err)
		return nil, err
	}

	metrics.MediaUploads.WithLabelValues(string(kind), "ok").Inc()
	metrics.MediaUploadBytes.WithLabelValues(string(kind)).Observe(float64(file.Size))
	s.logger.Info("media uploaded", "kind", kind, "key", key, "size", file.Size)

	return &UploadResult{
		ID:          rule.idPrefix + strconv.FormatInt(ts, 10),
		URL:         url,
		Filename:    path.Base(key),
		ContentType: file.ContentType,
		Size:        file.Size,
	}, nil
}

func (s *MediaService) reject(kind entities.MediaType, reason string) {
	metrics.MediaUploads.WithLabelValues(string(kind), reason).Inc()
}

func allowedType(allowed []string, contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}

// extension returns the lower-cased extension of name, or def when name has
// none or it is not plain alphanumeric.
func extension(name, def string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return def
	}
	ext := strings.ToLower(name[idx+1:])
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return def
		}
	}
	return ext
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
