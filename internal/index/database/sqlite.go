package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode
	if _, err := db.Exec(`
        PRAGMA foreign_keys = ON;
        PRAGMA journal_mode = WAL;
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMA: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (db *SQLiteDB) WithTx(fn func(Transaction) error) error {
	tx, err := db.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(&SQLiteTx{tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	return nil
}

func (db *SQLiteDB) GetDocument(path string) (*DocumentRecord, error) {
	var record DocumentRecord
	err := db.db.QueryRow(
		"SELECT path, last_modified FROM documents WHERE path = ?",
		path,
	).Scan(&record.Path, &record.LastModified)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return &record, nil
}

func (db *SQLiteDB) GetAllDocuments() ([]DocumentRecord, error) {
	rows, err := db.db.Query("SELECT path, last_modified FROM documents WHERE on_disk = 1")
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var records []DocumentRecord
	for rows.Next() {
		var record DocumentRecord
		if err := rows.Scan(&record.Path, &record.LastModified); err != nil {
			return nil, fmt.Errorf("failed to scan document record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document records: %w", err)
	}

	return records, nil
}

func (db *SQLiteDB) UpsertDocument(doc *DocumentRecord) error {
	result, err := db.db.Exec(`
        INSERT INTO documents (path, last_modified, on_disk)
        VALUES (?, ?, 1)
        ON CONFLICT(path) DO UPDATE SET
            last_modified = excluded.last_modified,
            on_disk = 1
    `, doc.Path, doc.LastModified)

	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return ErrConstraintViolation
	}

	return nil
}

func (db *SQLiteDB) DeleteDocument(path string) error {
	result, err := db.db.Exec("DELETE FROM documents WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (db *SQLiteDB) GetIncludes(sourcePath string) ([]IncludeRecord, error) {
	rows, err := db.db.Query(`
        SELECT source_path, target_path
        FROM includes
        WHERE source_path = ?
    `, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to query includes: %w", err)
	}
	defer rows.Close()

	return scanIncludeRecords(rows)
}

func (db *SQLiteDB) GetIncluders(targetPath string) ([]IncludeRecord, error) {
	rows, err := db.db.Query(`
        SELECT source_path, target_path
        FROM includes
        WHERE target_path = ?
    `, targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to query includers: %w", err)
	}
	defer rows.Close()

	return scanIncludeRecords(rows)
}

func (db *SQLiteDB) UpsertIncludes(sourcePath string, targetPaths []string) error {
	return db.WithTx(func(tx Transaction) error {
		return tx.UpsertIncludes(sourcePath, targetPaths)
	})
}

func (db *SQLiteDB) DeleteIncludes(sourcePath string) error {
	result, err := db.db.Exec("DELETE FROM includes WHERE source_path = ?", sourcePath)
	if err != nil {
		return fmt.Errorf("failed to delete includes: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (db *SQLiteDB) Clear() error {
	_, err := db.db.Exec(`
        DELETE FROM includes;
        DELETE FROM documents;
    `)
	if err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	return nil
}

func (db *SQLiteDB) Close() error {
	if _, err := db.db.Exec("DELETE FROM documents WHERE on_disk = 0"); err != nil {
		return fmt.Errorf("failed to clean up placeholder documents: %w", err)
	}
	return db.db.Close()
}

func scanIncludeRecords(rows *sql.Rows) ([]IncludeRecord, error) {
	var records []IncludeRecord
	for rows.Next() {
		var record IncludeRecord
		if err := rows.Scan(&record.SourcePath, &record.TargetPath); err != nil {
			return nil, fmt.Errorf("failed to scan include record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating include records: %w", err)
	}

	return records, nil
}
