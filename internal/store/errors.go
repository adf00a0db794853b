package store

import "errors"

// ErrCredentialNotFound is returned by [CredentialStore.Read] when no value is
// stored under the requested account. Callers should use [errors.Is].
var ErrCredentialNotFound = errors.New("credential not found")

// ErrUnknownBackend is returned by [NewCredentialStore] for an unsupported
// backend name.
var ErrUnknownBackend = errors.New("unknown credential store backend")

// Low-level database operation errors. These are wrapped by the sqlite
// backend when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan credential row")

	// ErrSealing is returned when a value cannot be sealed or opened.
	ErrSealing = errors.New("failed to seal credential value")
)
