// =============================================================================
// Locator Check - Materials Report
// =============================================================================
//
// This module classifies the same article export by description instead of
// by locator. It answers "which finishes does the export contain?" for the
// catalog maintainers.
//
// RULES:
//   - Rows with fewer than 24 fields are ignored, as in the locator report
//   - Code (column 1) and description (column 2) are trimmed
//   - Descriptions containing GENERICO or CODIGO INACTIVO are ignored
//   - A code of 8 or more characters counts as a searchable article
//   - The upper-cased description prefix selects the finish type:
//
//     | Prefix    | Type      |
//     |-----------|-----------|
//     | FORMICA   | formica   |
//     | CANTO     | canto     |
//     | VIDRIO    | vidrio    |
//     | TELA      | tela      |
//     | DURALAM   | supercor  |
//     | MADECANTO | madecanto |
//     | PINTURA   | pintura   |
//
// =============================================================================

package materials

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/locator-check/internal/classifier"
	"github.com/ginjaninja78/locator-check/internal/types"
	"go.uber.org/zap"
)

// MinArticleCodeLength is the shortest code counted as an article.
const MinArticleCodeLength = 8

// SampleLimit is the number of distinct descriptions printed per type.
const SampleLimit = 2

// Finish maps a description prefix to a finish type.
type Finish struct {
	Prefix string
	Type   string
}

// Finishes lists the finish types in match and report order.
var Finishes = []Finish{
	{Prefix: "FORMICA", Type: "formica"},
	{Prefix: "CANTO", Type: "canto"},
	{Prefix: "VIDRIO", Type: "vidrio"},
	{Prefix: "TELA", Type: "tela"},
	{Prefix: "DURALAM", Type: "supercor"},
	{Prefix: "MADECANTO", Type: "madecanto"},
	{Prefix: "PINTURA", Type: "pintura"},
}

// excluded descriptions are placeholders, not real articles.
var excluded = []string{"GENERICO", "CODIGO INACTIVO"}

// Rows is the sequence of data rows consumed by Scan.
type Rows interface {
	Next() bool
	Row() types.Row
	Err() error
}

// =============================================================================
// SUMMARY
// =============================================================================

// TypeSummary is the accumulated state of one finish type.
type TypeSummary struct {
	// Rows is the number of rows of this type.
	Rows int

	// Descriptions holds each distinct description once, in input order.
	Descriptions []string

	seen map[string]struct{}
}

// Summary is the result of a materials scan.
type Summary struct {
	// Articles is the number of rows with a searchable code.
	Articles int

	// Excluded is the number of placeholder rows ignored.
	Excluded int

	types map[string]*TypeSummary
}

// Type returns the summary for a finish type, or nil when none was seen.
func (s *Summary) Type(name string) *TypeSummary {
	return s.types[name]
}

func (s *Summary) add(finish, description string) {
	ts, ok := s.types[finish]
	if !ok {
		ts = &TypeSummary{seen: make(map[string]struct{})}
		s.types[finish] = ts
	}
	ts.Rows++
	if _, dup := ts.seen[description]; !dup {
		ts.seen[description] = struct{}{}
		ts.Descriptions = append(ts.Descriptions, description)
	}
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify returns the finish type for a description, or "" if none matches.
func Classify(description string) string {
	upper := strings.ToUpper(description)
	for _, finish := range Finishes {
		if strings.HasPrefix(upper, finish.Prefix) {
			return finish.Type
		}
	}
	return ""
}

// isExcluded reports whether a description is a placeholder.
func isExcluded(description string) bool {
	upper := strings.ToUpper(description)
	for _, marker := range excluded {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// Scan makes a single pass over rows and summarises finishes.
func Scan(rows Rows, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	summary := &Summary{types: make(map[string]*TypeSummary)}

	for rows.Next() {
		row := rows.Row()
		if len(row.Fields) <= classifier.LocatorColumn {
			continue
		}

		code := classifier.Trim(row.Fields[classifier.CodeColumn])
		description := classifier.Trim(row.Fields[classifier.DescriptionColumn])

		if isExcluded(description) {
			summary.Excluded++
			logger.Debug("Skipping placeholder article", zap.Int("line", row.Number), zap.String("code", code))
			continue
		}

		if utf8.RuneCountInString(code) >= MinArticleCodeLength {
			summary.Articles++
		}

		if finish := Classify(description); finish != "" {
			summary.add(finish, description)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.Info("Materials scan complete",
		zap.Int("articles", summary.Articles),
		zap.Int("excluded", summary.Excluded))

	return summary, nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// Write prints the materials summary.
func Write(w io.Writer, summary *Summary) error {
	writer := bufio.NewWriter(w)

	writer.WriteString(fmt.Sprintf("Articles: %d\n", summary.Articles))

	for _, finish := range Finishes {
		ts := summary.Type(finish.Type)
		if ts == nil {
			continue
		}

		writer.WriteString(fmt.Sprintf("\n%s: %d rows, %d distinct\n", finish.Type, ts.Rows, len(ts.Descriptions)))

		descriptions := ts.Descriptions
		if len(descriptions) > SampleLimit {
			descriptions = descriptions[:SampleLimit]
		}
		for _, description := range descriptions {
			writer.WriteString(fmt.Sprintf("  - %s\n", description))
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write materials report: %w", err)
	}
	return nil
}
