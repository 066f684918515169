// Package workers runs the agent's background loops: the credential
// watcher that keeps header rules in line with the stored session, the
// pseudonym cache janitor and the optional day-boundary rotation.
package workers

import (
	"context"

	"github.com/MKhiriev/go-openpims/models"
)

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ChangeHandler reacts to committed credential changes.
// [*rules.Manager] implements it.
type ChangeHandler interface {
	HandleChanges(ctx context.Context, changes models.StorageChanges)
}

// ChangeSource delivers committed storage changes.
type ChangeSource interface {
	OnChange(fn func(models.StorageChanges)) (cancel func())
}

// Evicter drops expired entries. [*pseudonym.Cache] implements it.
type Evicter interface {
	Evict() int
}

// Refresher re-derives everything that depends on the current day.
type Refresher interface {
	Refresh(ctx context.Context) error
}
