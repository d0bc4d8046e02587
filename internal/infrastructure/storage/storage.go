// Package storage holds the media upload backends.
package storage

import (
	"fmt"

	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
)

// New builds the backend selected by cfg.Driver. It returns
// errors.ErrStorageNotConfigured when the backend's credentials are missing.
func New(cfg config.StorageConfig, logger ports.Logger) (ports.ObjectStorage, error) {
	switch cfg.Driver {
	case "bunny", "":
		s, err := NewBunnyStorage(cfg.Bunny, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "s3":
		s, err := NewS3Storage(cfg.S3, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
