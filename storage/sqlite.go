package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"stream-insights/catalog"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage caches the loaded catalog in a local SQLite database so
// reports can run without re-reading the source CSV.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	dataPath string
}

func NewSQLiteStorage(dataPath string) *SQLiteStorage {
	dbPath := filepath.Join(dataPath, "stream_insights.db")
	return &SQLiteStorage{
		dbPath:   dbPath,
		dataPath: dataPath,
	}
}

func (s *SQLiteStorage) Initialize() error {
	if err := os.MkdirAll(s.dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	s.db = db

	migrationManager := NewMigrationManager(s.db)
	if err := migrationManager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize migrations: %v", err)
	}

	if err := migrationManager.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	log.Printf("SQLite database initialized at: %s", s.dbPath)
	return nil
}

// ReplaceAll swaps the stored catalog for a freshly loaded one in a single
// transaction, so readers never observe a half-loaded catalog.
func (s *SQLiteStorage) ReplaceAll(records []catalog.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM titles`); err != nil {
		return fmt.Errorf("failed to clear titles: %v", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO titles (show_id, type, title, director, "cast", country,
		date_added, release_year, rating, duration, listed_in, description,
		loaded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.ShowID, string(r.Type), r.Title, r.Director, r.Cast,
			r.Country, r.DateAdded, r.ReleaseYear, r.Rating, r.Duration,
			r.ListedIn, r.Description)
		if err != nil {
			return fmt.Errorf("failed to insert title %s: %v", r.ShowID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %v", err)
	}

	log.Printf("Stored %d catalog records", len(records))
	return nil
}

// SaveRecord inserts or updates a single title keyed by show_id.
func (s *SQLiteStorage) SaveRecord(r catalog.Record) error {
	query := `
	INSERT INTO titles (show_id, type, title, director, "cast", country,
		date_added, release_year, rating, duration, listed_in, description,
		loaded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(show_id) DO UPDATE SET
		type = excluded.type,
		title = excluded.title,
		director = excluded.director,
		"cast" = excluded."cast",
		country = excluded.country,
		date_added = excluded.date_added,
		release_year = excluded.release_year,
		rating = excluded.rating,
		duration = excluded.duration,
		listed_in = excluded.listed_in,
		description = excluded.description
	`

	if _, err := s.db.Exec(query, r.ShowID, string(r.Type), r.Title, r.Director,
		r.Cast, r.Country, r.DateAdded, r.ReleaseYear, r.Rating, r.Duration,
		r.ListedIn, r.Description); err != nil {
		return fmt.Errorf("failed to save title %s: %v", r.ShowID, err)
	}
	return nil
}

// LoadAll reads the stored catalog back into memory as the immutable
// snapshot the report engine works on.
func (s *SQLiteStorage) LoadAll() ([]catalog.Record, error) {
	query := `
	SELECT show_id, type, title, director, "cast", country, date_added,
		release_year, rating, duration, listed_in, description
	FROM titles
	ORDER BY show_id
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles: %v", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var r catalog.Record
		var typ string
		err := rows.Scan(&r.ShowID, &typ, &r.Title, &r.Director, &r.Cast,
			&r.Country, &r.DateAdded, &r.ReleaseYear, &r.Rating, &r.Duration,
			&r.ListedIn, &r.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan title: %v", err)
		}
		r.Type, err = catalog.ParseType(typ)
		if err != nil {
			return nil, fmt.Errorf("failed to load title %s: %v", r.ShowID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read titles: %v", err)
	}

	return records, nil
}

func (s *SQLiteStorage) GetStats() (map[string]int, error) {
	stats := make(map[string]int)

	var total int
	err := s.db.QueryRow("SELECT COUNT(*) FROM titles").Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %v", err)
	}
	stats["total"] = total

	var movies int
	err = s.db.QueryRow("SELECT COUNT(*) FROM titles WHERE type = 'Movie'").Scan(&movies)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies count: %v", err)
	}
	stats["movies"] = movies

	var shows int
	err = s.db.QueryRow("SELECT COUNT(*) FROM titles WHERE type = 'TV Show'").Scan(&shows)
	if err != nil {
		return nil, fmt.Errorf("failed to get TV shows count: %v", err)
	}
	stats["tv_shows"] = shows

	return stats, nil
}

func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStorage) GetDB() (*sql.DB, error) {
	if s.db == nil {
		db, err := sql.Open("sqlite3", s.dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %v", err)
		}
		s.db = db
	}
	return s.db, nil
}

// Migration management methods
func (s *SQLiteStorage) GetMigrationManager() *MigrationManager {
	return NewMigrationManager(s.db)
}

func (s *SQLiteStorage) GetDatabaseVersion() (int64, error) {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return 0, err
	}
	return migrationManager.Version()
}

func (s *SQLiteStorage) RunMigrations() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Up()
}

func (s *SQLiteStorage) RollbackMigration() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Down()
}

func (s *SQLiteStorage) ResetDatabase() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Reset()
}
