package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAuthorNotFound is returned when no author has the requested id.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrBookNotFound is returned when no book has the requested id.
	ErrBookNotFound = errors.New("book not found")

	// ErrAlreadyExists is returned when a create collides with an existing
	// record id.
	ErrAlreadyExists = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or INSERT against
	// the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewStorages] for drivers this
	// package does not serve.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)
