package database

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrConstraintViolation = errors.New("constraint violation")
)

// DocumentRecord is one indexed source file.
type DocumentRecord struct {
	Path         string
	LastModified int64
}

// IncludeRecord is one resolved include edge between two files.
type IncludeRecord struct {
	SourcePath string
	TargetPath string
}

// Transaction covers the write operations available inside WithTx.
type Transaction interface {
	UpsertDocument(doc *DocumentRecord) error
	UpsertIncludes(sourcePath string, targetPaths []string) error
}

// Database is the persistent include graph.
type Database interface {
	WithTx(fn func(Transaction) error) error

	GetDocument(path string) (*DocumentRecord, error)
	GetAllDocuments() ([]DocumentRecord, error)
	UpsertDocument(doc *DocumentRecord) error
	DeleteDocument(path string) error

	GetIncludes(sourcePath string) ([]IncludeRecord, error)
	GetIncluders(targetPath string) ([]IncludeRecord, error)
	UpsertIncludes(sourcePath string, targetPaths []string) error
	DeleteIncludes(sourcePath string) error

	Clear() error
	Close() error
}
