package storage

import "errors"

var ErrNotFound = errors.New("url not found")

type URLStorage interface {
	Insert(originalURL string) uint32

	Lookup(id uint32) (string, bool)

	Len() int
}
