package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/MikhailRaia/shorturl/internal/model"
	"github.com/MikhailRaia/shorturl/internal/service"
	"github.com/rs/zerolog/log"
)

const maxFormMemory = 1 << 20

var errMissingURL = errors.New("url field is missing")

type ShortenRequest struct {
	URL *string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatsResponse struct {
	URLs int `json:"urls"`
}

// handleShorten accepts a form-encoded or JSON submission with a single "url" field.
// A URL rejected by validation still gets 200, with the error reported in the body.
func (h *Handler) handleShorten(w http.ResponseWriter, r *http.Request) {
	originalURL, err := readSubmittedURL(r)
	if err != nil {
		log.Debug().Err(err).Msg("Malformed shorten request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entry, err := h.urlService.ShortenURL(r.Context(), originalURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			writeJSON(w, http.StatusOK, ErrorResponse{Error: service.ErrInvalidURL.Error()})
			return
		}

		log.Error().Err(err).Msg("Failed to shorten URL")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, model.ShortenResult{
		OriginalURL: entry.OriginalURL,
		ShortURL:    entry.ID,
	})
}

func readSubmittedURL(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		defer r.Body.Close()

		var request ShortenRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return "", err
		}
		if request.URL == nil {
			return "", errMissingURL
		}
		return *request.URL, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return "", err
		}

	default:
		if err := r.ParseForm(); err != nil {
			return "", err
		}
	}

	values, ok := r.PostForm["url"]
	if !ok || len(values) == 0 {
		return "", errMissingURL
	}
	return values[0], nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	response, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}
