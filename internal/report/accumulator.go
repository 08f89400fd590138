// =============================================================================
// Locator Check - Report Accumulator
// =============================================================================
//
// The accumulator holds, for every category, the number of rows that fell
// into it and every sample record in input order. It is filled by a single
// forward pass (Scan) and only read afterwards (Write).
//
// Only the first SampleLimit samples of each category are printed, but all
// of them are kept so that callers can inspect the full classification.
//
// =============================================================================

package report

import (
	"github.com/ginjaninja78/locator-check/internal/types"
)

// SampleLimit is the number of samples printed per category.
const SampleLimit = 2

// Bucket is the accumulated state of one category.
type Bucket struct {
	// Count is the number of rows classified into the category.
	Count int

	// Samples contains one record per classified row, in input order.
	Samples []types.SampleRecord
}

// Accumulator maps each category to its bucket.
type Accumulator struct {
	buckets map[types.Category]*Bucket

	// Stats about rows that never reached a bucket.
	ShortRows     int
	EmptyLocators int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	buckets := make(map[types.Category]*Bucket, len(types.Categories))
	for _, category := range types.Categories {
		buckets[category] = &Bucket{}
	}
	return &Accumulator{buckets: buckets}
}

// Add records one classified row.
func (a *Accumulator) Add(category types.Category, sample types.SampleRecord) {
	bucket, ok := a.buckets[category]
	if !ok {
		bucket = &Bucket{}
		a.buckets[category] = bucket
	}
	bucket.Count++
	bucket.Samples = append(bucket.Samples, sample)
}

// Count returns the number of rows classified into a category.
func (a *Accumulator) Count(category types.Category) int {
	if bucket, ok := a.buckets[category]; ok {
		return bucket.Count
	}
	return 0
}

// Samples returns every sample recorded for a category, in input order.
func (a *Accumulator) Samples(category types.Category) []types.SampleRecord {
	if bucket, ok := a.buckets[category]; ok {
		return bucket.Samples
	}
	return nil
}

// Total returns the number of classified rows across all categories.
func (a *Accumulator) Total() int {
	total := 0
	for _, bucket := range a.buckets {
		total += bucket.Count
	}
	return total
}
