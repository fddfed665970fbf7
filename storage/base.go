package storage

import "stream-insights/catalog"

// StorageInterface is the persistence contract the CLI and the refresh
// job depend on.
type StorageInterface interface {
	Initialize() error
	ReplaceAll(records []catalog.Record) error
	SaveRecord(record catalog.Record) error
	LoadAll() ([]catalog.Record, error)
	GetStats() (map[string]int, error)
	Close() error
}
