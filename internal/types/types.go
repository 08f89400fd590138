// =============================================================================
// Locator Check - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - classifier
//   - report
//   - cmd
//
// =============================================================================

package types

// =============================================================================
// CATEGORY
// =============================================================================

// Category is the bucket a locator falls into, based on its prefix.
type Category string

const (
	CategoryPI    Category = "PI"
	CategoryFOR   Category = "FOR"
	CategoryCTA   Category = "CTA"
	CategoryTEL   Category = "TEL"
	CategoryVID   Category = "VID"
	CategoryAGL   Category = "AGL"
	CategoryOther Category = "OTHER"
)

// Categories lists every category in report order.
// The prefixed categories come first, in the order they are tested.
var Categories = []Category{
	CategoryPI,
	CategoryFOR,
	CategoryCTA,
	CategoryTEL,
	CategoryVID,
	CategoryAGL,
	CategoryOther,
}

// =============================================================================
// ROW TYPES
// =============================================================================

// Row is one input line split into fields.
type Row struct {
	// Number is the 1-indexed line number in the source file.
	// The header is line 1, so data rows start at 2.
	Number int

	// Fields contains the raw field values, untrimmed.
	Fields []string
}

// SampleRecord is a truncated, human-readable view of a classified row.
type SampleRecord struct {
	// Locator is the trimmed locator, cut to at most 30 characters.
	Locator string

	// Code is the article code (column 1), as read.
	Code string

	// Description is the article description (column 2), cut to at most
	// 50 characters.
	Description string
}
