// Package cache memoizes derived ledger views per owner. The store is an
// opaque map of view keys to computed values; mutations to either ledger
// invalidate every view the owner has cached.
package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// View keys for the aggregation engine's outputs. Parameterized views embed
// their parameter in the key.
const (
	ViewBalance = "balance"
	ViewHistory = "history"
	ViewTopTags = "top_tags"
	ViewSummary = "summary"
)

// ViewMonthly returns the cache key for a yearly month-by-month series.
func ViewMonthly(year int) string {
	return fmt.Sprintf("monthly:%d", year)
}

// ViewTagStats returns the cache key for one ledger's tag statistics.
func ViewTagStats(kind string) string {
	return "tag_stats:" + kind
}

// Store holds computed derived views keyed by owner.
//
// Invalidate must complete synchronously as part of every committed mutation,
// strictly before the mutation's result reaches the caller: once it returns,
// no subsequent Get for that owner may observe pre-mutation values.
// Invalidating an owner with nothing cached is a no-op. An invalidation
// failure is a retryable error and is never silently dropped, since serving
// stale financial aggregates is a correctness defect.
//
// Epoch and the epoch argument to Set close the compute/invalidate race: a
// view computed from rows fetched before a mutation must not be written back
// after that mutation's Invalidate has run, or every later Get would serve
// the pre-mutation aggregate. Callers capture Epoch before fetching source
// rows; Set discards the value when the owner's epoch has moved since.
type Store interface {
	Get(ownerID uuid.UUID, view string) (any, bool)
	Set(ownerID uuid.UUID, view string, value any, epoch uint64)
	Epoch(ownerID uuid.UUID) uint64
	Invalidate(ownerID uuid.UUID) error
}
