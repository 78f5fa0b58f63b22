package settings

import (
	"context"
)

// Keys read by the editor
const (
	KeyEditorMode = "editor.mode"
	KeyPlatform   = "editor.platform"
)

// Store is a typed key/value settings store. Getters return defaultValue when
// the key is absent or holds an empty value.
type Store interface {
	Bool(key string, defaultValue bool) bool
	SetBool(ctx context.Context, key string, value bool) error

	String(key string, defaultValue string) string
	SetString(ctx context.Context, key string, value string) error

	Number(key string, defaultValue float64) float64
	SetNumber(ctx context.Context, key string, value float64) error
}
