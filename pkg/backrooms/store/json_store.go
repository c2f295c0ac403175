package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"backrooms/pkg/backrooms/level"
)

// JSONStore keeps a library of levels in a single local JSON file.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *jsonData
}

// jsonData is the structure of the JSON library file.
type jsonData struct {
	Levels map[string]*level.Document `json:"levels"`
}

// NewJSONStore opens (or creates) a JSON level library at the given path.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data: &jsonData{
			Levels: make(map[string]*level.Document),
		},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load level library: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create level library: %w", err)
		}
	}

	return store, nil
}

// loadFromFile loads the library from disk
func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(file, js.data)
}

// saveToFile writes the library to disk
func (js *JSONStore) saveToFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	data, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(js.filePath, data, 0644)
}

// SaveLevel stores a level document under a name
func (js *JSONStore) SaveLevel(name string, doc *level.Document) error {
	js.mutex.Lock()
	js.data.Levels[name] = doc
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadLevel loads a level document by name
func (js *JSONStore) LoadLevel(name string) (*level.Document, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	doc, exists := js.data.Levels[name]
	if !exists {
		return nil, fmt.Errorf("level %q not found", name)
	}
	return doc, nil
}

// ListLevels returns the stored level names in sorted order
func (js *JSONStore) ListLevels() ([]string, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	names := make([]string, 0, len(js.data.Levels))
	for name := range js.data.Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteLevel removes a level from the library
func (js *JSONStore) DeleteLevel(name string) error {
	js.mutex.Lock()
	if _, exists := js.data.Levels[name]; !exists {
		js.mutex.Unlock()
		return fmt.Errorf("level %q not found", name)
	}
	delete(js.data.Levels, name)
	js.mutex.Unlock()

	return js.saveToFile()
}

// Close closes the store (no-op for JSON store)
func (js *JSONStore) Close() error {
	return nil
}
