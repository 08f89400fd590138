// =============================================================================
// Locator Check - Classifier Module
// =============================================================================
//
// This module decides which category a locator belongs to and builds the
// sample record shown for it in the report.
//
// CLASSIFICATION RULES:
//   A locator matches a prefix when it starts with the prefix followed by a
//   period. Prefixes are tested in a fixed order and the first match wins:
//
//     PI.  FOR.  CTA.  TEL.  VID.  AGL.
//
//   Anything else that is not empty is OTHER. Matching is case sensitive,
//   so "pi.123" and "PI123" are both OTHER.
//
// COLUMN LAYOUT:
//   The input is the MP article export. Only three data columns matter:
//
//   | Index | Content     |
//   |-------|-------------|
//   | 1     | Code        |
//   | 2     | Description |
//   | 23    | Locator     |
//
// =============================================================================

package classifier

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ginjaninja78/locator-check/internal/types"
	"github.com/ginjaninja78/locator-check/pkg/utils"
)

// =============================================================================
// COLUMN CONSTANTS
// =============================================================================

const (
	// CodeColumn is the index of the article code field.
	CodeColumn = 1

	// DescriptionColumn is the index of the article description field.
	DescriptionColumn = 2

	// LocatorColumn is the index of the locator field.
	LocatorColumn = 23

	// MaxLocatorLength is the number of locator characters kept in a sample.
	MaxLocatorLength = 30

	// MaxDescriptionLength is the number of description characters kept in a sample.
	MaxDescriptionLength = 50
)

// HeaderLabelColumns are the header columns printed before the report.
var HeaderLabelColumns = []int{23, 24}

// ErrShortRow is returned when a row lacks the code or description column.
var ErrShortRow = errors.New("row is missing code or description column")

// prefixed lists the categories that are selected by a "PREFIX." locator,
// in the order they are tested.
var prefixed = []types.Category{
	types.CategoryPI,
	types.CategoryFOR,
	types.CategoryCTA,
	types.CategoryTEL,
	types.CategoryVID,
	types.CategoryAGL,
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify returns the category for a non-empty, trimmed locator.
func Classify(locator string) types.Category {
	for _, category := range prefixed {
		if strings.HasPrefix(locator, string(category)+".") {
			return category
		}
	}
	return types.CategoryOther
}

// Locator extracts the trimmed locator from a row's fields.
//
// RETURNS:
//   - The trimmed locator.
//   - false if the row has no locator column or the locator is blank.
func Locator(fields []string) (string, bool) {
	if len(fields) <= LocatorColumn {
		return "", false
	}

	locator := Trim(fields[LocatorColumn])
	if locator == "" {
		return "", false
	}

	return locator, true
}

// Trim removes surrounding whitespace from a field. The ASCII file, group,
// record and unit separators (U+001C to U+001F) count as whitespace too.
func Trim(field string) string {
	return strings.TrimFunc(field, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// NewSample builds the sample record for a classified row.
//
// PARAMETERS:
//   - locator: The trimmed locator, as returned by Locator.
//   - fields: All fields of the row.
//
// RETURNS:
//   - The sample record, with locator and description truncated.
//   - ErrShortRow if the row has no code or description column.
func NewSample(locator string, fields []string) (types.SampleRecord, error) {
	if len(fields) <= DescriptionColumn {
		return types.SampleRecord{}, fmt.Errorf("%w: got %d fields", ErrShortRow, len(fields))
	}

	return types.SampleRecord{
		Locator:     utils.Truncate(locator, MaxLocatorLength),
		Code:        fields[CodeColumn],
		Description: utils.Truncate(fields[DescriptionColumn], MaxDescriptionLength),
	}, nil
}
