// ABOUTME: Registry record model for generated filenames
// ABOUTME: Keyed by global ID with a country/year secondary index

package registry

import (
	"errors"
	"time"

	"github.com/nainya/lexname/pkg/filename"
)

// ErrNotFound is returned when no record exists for a global ID.
var ErrNotFound = errors.New("registry record not found")

// Record is one registered filename. Components carry everything the
// collaborating indexing/search layers need.
type Record struct {
	GlobalID   string               `json:"global_id"`
	Filename   string               `json:"filename"`
	FolderHint string               `json:"folder_hint"`
	Components *filename.Components `json:"components"`
	CreatedAt  time.Time            `json:"created_at"`
}
