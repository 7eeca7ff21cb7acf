package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when no stored document matches the
	// lookup.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrDuplicateID is returned by Put when the identifier is already taken.
	ErrDuplicateID = errors.New("document id already exists")

	// ErrCorruptRecord is returned when a stored row cannot be decoded into
	// a document.
	ErrCorruptRecord = errors.New("stored document is corrupt")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
