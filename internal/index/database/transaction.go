package database

import (
	"database/sql"
	"fmt"
)

type SQLiteTx struct {
	tx *sql.Tx
}

func (tx *SQLiteTx) UpsertDocument(doc *DocumentRecord) error {
	_, err := tx.tx.Exec(`
        INSERT INTO documents (path, last_modified, on_disk)
        VALUES (?, ?, 1)
        ON CONFLICT(path) DO UPDATE SET
            last_modified = excluded.last_modified,
            on_disk = 1
    `, doc.Path, doc.LastModified)

	if err != nil {
		return fmt.Errorf("failed to upsert document in transaction: %w", err)
	}

	return nil
}

func (tx *SQLiteTx) UpsertIncludes(sourcePath string, targetPaths []string) error {
	// Replace the source's outgoing edges
	_, err := tx.tx.Exec("DELETE FROM includes WHERE source_path = ?", sourcePath)
	if err != nil {
		return fmt.Errorf("failed to delete existing includes: %w", err)
	}

	if len(targetPaths) == 0 {
		return nil
	}

	if err := tx.ensureDocument(sourcePath); err != nil {
		return err
	}

	stmt, err := tx.tx.Prepare(
		"INSERT INTO includes (source_path, target_path) VALUES (?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare include insert statement: %w", err)
	}
	defer stmt.Close()

	for _, targetPath := range targetPaths {
		if err := tx.ensureDocument(targetPath); err != nil {
			return err
		}
		if _, err := stmt.Exec(sourcePath, targetPath); err != nil {
			return fmt.Errorf("failed to insert include: %w", err)
		}
	}

	return nil
}

// ensureDocument inserts a placeholder row so the foreign keys hold even
// for targets that were never indexed themselves.
func (tx *SQLiteTx) ensureDocument(path string) error {
	_, err := tx.tx.Exec(`
        INSERT INTO documents (path, last_modified, on_disk)
        VALUES (?, 0, 0)
        ON CONFLICT(path) DO NOTHING
    `, path)
	if err != nil {
		return fmt.Errorf("failed to ensure document %s exists: %w", path, err)
	}
	return nil
}
