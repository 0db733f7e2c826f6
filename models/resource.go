package models

// Resource names a REST collection served by one of the BFF binaries. The
// value is used as the URL segment under /api/v1/ and as a metrics tag.
type Resource string

const (
	ResourceAuthors Resource = "authors"
	ResourceBooks   Resource = "books"
)

// String implements fmt.Stringer.
func (r Resource) String() string {
	return string(r)
}

// Valid reports whether r is one of the known resources.
func (r Resource) Valid() bool {
	switch r {
	case ResourceAuthors, ResourceBooks:
		return true
	default:
		return false
	}
}
