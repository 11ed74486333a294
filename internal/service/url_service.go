package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MikhailRaia/shorturl/internal/metrics"
	"github.com/MikhailRaia/shorturl/internal/model"
	"github.com/MikhailRaia/shorturl/internal/storage"
	"github.com/rs/zerolog/log"
)

var ErrInvalidURL = errors.New("invalid url")

// URLService provides business logic for creating and resolving short URLs.
type URLService struct {
	storage storage.URLStorage
}

// NewURLService constructs a URLService over the given storage.
func NewURLService(storage storage.URLStorage) *URLService {
	return &URLService{
		storage: storage,
	}
}

// ValidateURL accepts any string starting with "http".
func ValidateURL(originalURL string) error {
	if !strings.HasPrefix(originalURL, "http") {
		return ErrInvalidURL
	}
	return nil
}

// ShortenURL validates originalURL and stores it under the next sequential ID.
func (s *URLService) ShortenURL(ctx context.Context, originalURL string) (model.Entry, error) {
	if err := ValidateURL(originalURL); err != nil {
		metrics.RecordInvalidSubmission()
		log.Debug().Str("url", originalURL).Msg("Rejected submission")
		return model.Entry{}, err
	}

	id := s.storage.Insert(originalURL)
	metrics.RecordURLShortened()

	log.Debug().
		Uint32("id", id).
		Str("url", originalURL).
		Msg("Shortened URL")

	return model.Entry{ID: id, OriginalURL: originalURL}, nil
}

// GetOriginalURL resolves id to the stored URL or returns storage.ErrNotFound.
func (s *URLService) GetOriginalURL(ctx context.Context, id uint32) (string, error) {
	originalURL, found := s.storage.Lookup(id)
	metrics.RecordLookup(found)

	if !found {
		return "", storage.ErrNotFound
	}

	return originalURL, nil
}

// GetStats returns the number of stored URLs.
func (s *URLService) GetStats(ctx context.Context) int {
	return s.storage.Len()
}
