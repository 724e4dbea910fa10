package database_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"overture/internal/index/database"
)

type testHelper struct {
	db   *database.SQLiteDB
	path string
}

func setupTest(t *testing.T) *testHelper {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "overture_db_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := database.NewSQLiteDB(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create test database: %v", err)
	}

	return &testHelper{
		db:   db,
		path: tmpDir,
	}
}

func (h *testHelper) cleanup(t *testing.T) {
	t.Helper()
	if err := h.db.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
	if err := os.RemoveAll(h.path); err != nil {
		t.Errorf("Failed to remove test directory: %v", err)
	}
}

func TestDocumentOperations(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	t.Run("UpsertAndGetDocument", func(t *testing.T) {
		doc := &database.DocumentRecord{
			Path:         "/proj/main.ly",
			LastModified: time.Now().Unix(),
		}

		if err := h.db.UpsertDocument(doc); err != nil {
			t.Fatalf("UpsertDocument failed: %v", err)
		}

		got, err := h.db.GetDocument(doc.Path)
		if err != nil {
			t.Fatalf("GetDocument failed: %v", err)
		}
		if got.Path != doc.Path || got.LastModified != doc.LastModified {
			t.Errorf("expected %+v, got %+v", doc, got)
		}

		// Upsert again with a later timestamp
		doc.LastModified++
		if err := h.db.UpsertDocument(doc); err != nil {
			t.Fatalf("second UpsertDocument failed: %v", err)
		}
		got, err = h.db.GetDocument(doc.Path)
		if err != nil {
			t.Fatalf("GetDocument failed: %v", err)
		}
		if got.LastModified != doc.LastModified {
			t.Errorf("expected updated timestamp %d, got %d", doc.LastModified, got.LastModified)
		}
	})

	t.Run("GetMissingDocument", func(t *testing.T) {
		if _, err := h.db.GetDocument("/nope.ly"); err != database.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteDocument", func(t *testing.T) {
		doc := &database.DocumentRecord{Path: "/proj/tmp.ly", LastModified: 1}
		if err := h.db.UpsertDocument(doc); err != nil {
			t.Fatalf("UpsertDocument failed: %v", err)
		}
		if err := h.db.DeleteDocument(doc.Path); err != nil {
			t.Fatalf("DeleteDocument failed: %v", err)
		}
		if err := h.db.DeleteDocument(doc.Path); err != database.ErrNotFound {
			t.Errorf("expected ErrNotFound for second delete, got %v", err)
		}
	})
}

func TestIncludeOperations(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	source := "/proj/main.ly"
	targets := []string{"/proj/parts/violin.ly", "/proj/parts/cello.ly"}

	if err := h.db.UpsertIncludes(source, targets); err != nil {
		t.Fatalf("UpsertIncludes failed: %v", err)
	}

	t.Run("GetIncludes", func(t *testing.T) {
		records, err := h.db.GetIncludes(source)
		if err != nil {
			t.Fatalf("GetIncludes failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 includes, got %d", len(records))
		}
	})

	t.Run("GetIncluders", func(t *testing.T) {
		records, err := h.db.GetIncluders(targets[0])
		if err != nil {
			t.Fatalf("GetIncluders failed: %v", err)
		}
		if len(records) != 1 || records[0].SourcePath != source {
			t.Errorf("expected backlink from %s, got %v", source, records)
		}
	})

	t.Run("UpsertReplacesIncludes", func(t *testing.T) {
		if err := h.db.UpsertIncludes(source, []string{targets[0]}); err != nil {
			t.Fatalf("UpsertIncludes failed: %v", err)
		}
		records, err := h.db.GetIncludes(source)
		if err != nil {
			t.Fatalf("GetIncludes failed: %v", err)
		}
		if len(records) != 1 || records[0].TargetPath != targets[0] {
			t.Errorf("expected only %s, got %v", targets[0], records)
		}
	})

	t.Run("DeleteIncludes", func(t *testing.T) {
		if err := h.db.DeleteIncludes(source); err != nil {
			t.Fatalf("DeleteIncludes failed: %v", err)
		}
		records, err := h.db.GetIncludes(source)
		if err != nil {
			t.Fatalf("GetIncludes failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no includes, got %v", records)
		}
	})
}

func TestPlaceholderDocumentsHidden(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	// Only the target placeholder rows are created by UpsertIncludes;
	// they must not show up as real documents.
	if err := h.db.UpsertIncludes("/proj/main.ly", []string{"/proj/other.ly"}); err != nil {
		t.Fatalf("UpsertIncludes failed: %v", err)
	}

	docs, err := h.db.GetAllDocuments()
	if err != nil {
		t.Fatalf("GetAllDocuments failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no on-disk documents, got %v", docs)
	}
}

func TestWithTx(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	err := h.db.WithTx(func(tx database.Transaction) error {
		if err := tx.UpsertDocument(&database.DocumentRecord{
			Path:         "/proj/main.ly",
			LastModified: time.Now().Unix(),
		}); err != nil {
			return err
		}
		return tx.UpsertIncludes("/proj/main.ly", []string{"/proj/parts/violin.ly"})
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	records, err := h.db.GetIncludes("/proj/main.ly")
	if err != nil {
		t.Fatalf("GetIncludes failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 include, got %v", records)
	}
}

func TestClear(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	if err := h.db.UpsertDocument(&database.DocumentRecord{Path: "/a.ly", LastModified: 1}); err != nil {
		t.Fatalf("UpsertDocument failed: %v", err)
	}
	if err := h.db.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := h.db.GetDocument("/a.ly"); err != database.ErrNotFound {
		t.Errorf("expected empty database, got %v", err)
	}
}
