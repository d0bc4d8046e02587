package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainerrors "github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
)

const defaultBunnyHostname = "storage.bunnycdn.com"

// BunnyStorage uploads objects to a Bunny storage zone over its HTTP API.
type BunnyStorage struct {
	client    *http.Client
	endpoint  string // scheme://host/zone
	accessKey string
	baseURL   string
	logger    ports.Logger
}

func NewBunnyStorage(cfg config.BunnyConfig, timeout time.Duration, logger ports.Logger) (*BunnyStorage, error) {
	if cfg.StorageZone == "" || cfg.AccessKey == "" || cfg.BaseURL == "" {
		return nil, domainerrors.ErrStorageNotConfigured
	}

	host := cfg.Hostname
	if host == "" {
		host = defaultBunnyHostname
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	return &BunnyStorage{
		client:    &http.Client{Timeout: timeout},
		endpoint:  strings.TrimRight(host, "/") + "/" + cfg.StorageZone,
		accessKey: cfg.AccessKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		logger:    logger,
	}, nil
}

// Put sends body with a single PUT. There is no retry.
func (s *BunnyStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.endpoint+"/"+key, body)
	if err != nil {
		return "", err
	}
	req.ContentLength = size
	req.Header.Set("AccessKey", s.accessKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", domainerrors.ErrStorageUploadRejected.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Error("bunny upload rejected",
			"status", resp.StatusCode,
			"key", key,
			"body", string(detail),
		)
		if resp.StatusCode == http.StatusUnauthorized {
			return "", domainerrors.ErrStorageUnauthorized
		}
		return "", domainerrors.ErrStorageUploadRejected.Wrap(fmt.Errorf("status %d", resp.StatusCode))
	}

	return s.baseURL + "/" + key, nil
}
