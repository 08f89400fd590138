// Package source picks the row reader for an input file.
package source

import (
	"github.com/ginjaninja78/locator-check/internal/config"
	"github.com/ginjaninja78/locator-check/internal/tsv"
	"github.com/ginjaninja78/locator-check/internal/types"
	"github.com/ginjaninja78/locator-check/internal/xlsxparser"
	"github.com/ginjaninja78/locator-check/pkg/utils"
)

// Source is a finite, forward-only sequence of rows that follows a header.
type Source interface {
	Header() []string
	Next() bool
	Row() types.Row
	Err() error
	Close() error
}

// Open opens cfg.InputFile with the reader that matches its format.
func Open(cfg *config.Config) (Source, error) {
	switch utils.DetectInputFormat(cfg.InputFile) {
	case utils.FormatXLSX:
		reader, err := xlsxparser.Open(cfg.InputFile, cfg.Sheet)
		if err != nil {
			return nil, err
		}
		return reader, nil
	default:
		enc, err := config.Decoder(cfg.Encoding)
		if err != nil {
			return nil, err
		}
		reader, err := tsv.Open(cfg.InputFile, enc)
		if err != nil {
			return nil, err
		}
		return reader, nil
	}
}

// Sheet returns the worksheet a workbook source reads from, or "" for
// text sources.
func Sheet(src Source) string {
	if s, ok := src.(interface{ Sheet() string }); ok {
		return s.Sheet()
	}
	return ""
}
