// Package store persists libraries of level documents, the way the level
// editors keep their maps directory: a JSON library file for local work
// and a PostgreSQL backend for shared authoring setups.
package store

import "backrooms/pkg/backrooms/level"

// Storage defines the interface for level persistence
type Storage interface {
	SaveLevel(name string, doc *level.Document) error
	LoadLevel(name string) (*level.Document, error)
	ListLevels() ([]string, error)
	DeleteLevel(name string) error
	Close() error
}
