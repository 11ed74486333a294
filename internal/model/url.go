package model

// Entry is one stored shortened URL. ID is both the map key and the public short identifier.
type Entry struct {
	ID          uint32
	OriginalURL string
}

// ShortenResult is the external representation of an accepted submission.
type ShortenResult struct {
	OriginalURL string `json:"original_url"`
	ShortURL    uint32 `json:"short_url"`
}
