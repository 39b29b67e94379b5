package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a fresh ULID string. Used for hit IDs, batch keys and
// request IDs; a package variable so tests can pin it.
var NewULID = func() string {
	return ulid.Make().String()
}
