package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Format is the encoding a document file was written in.
type Format string

// Supported document formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Metadata describes where a loaded document came from.
type Metadata struct {
	Path     string    `json:"path"`
	Format   Format    `json:"format"`
	Hash     string    `json:"hash"` // SHA256 hex digest of the JSON form
	LoadedAt time.Time `json:"loaded_at"`
}

func newMetadata(path string, format Format, doc []byte) Metadata {
	return Metadata{
		Path:     path,
		Format:   format,
		Hash:     computeHash(doc),
		LoadedAt: time.Now().UTC(),
	}
}

func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
