package classifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/locator-check/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(code, desc, loc string) []string {
	fields := make([]string, LocatorColumn+1)
	fields[CodeColumn] = code
	fields[DescriptionColumn] = desc
	fields[LocatorColumn] = loc
	return fields
}

func TestClassify(t *testing.T) {
	tests := []struct {
		locator string
		want    types.Category
	}{
		{"PI.12345", types.CategoryPI},
		{"FOR.7", types.CategoryFOR},
		{"CTA.A-1", types.CategoryCTA},
		{"TEL.", types.CategoryTEL},
		{"VID.999", types.CategoryVID},
		{"AGL.x.y", types.CategoryAGL},
		{"XYZ.999", types.CategoryOther},
		{"PI", types.CategoryOther},
		{"PI12345", types.CategoryOther},
		{"pi.12345", types.CategoryOther},
		{"PIFOR.1", types.CategoryOther},
		{"FOR.PI.1", types.CategoryFOR},
		{".PI", types.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.locator))
		})
	}
}

func TestClassifyFirstPrefixWins(t *testing.T) {
	// A locator can only start with one of the prefixes, but the order is
	// still observable through the category list.
	for i, category := range prefixed {
		assert.Equal(t, types.Categories[i], category)
	}
	assert.Equal(t, types.CategoryOther, types.Categories[len(types.Categories)-1])
}

func TestLocator(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		loc, ok := Locator(row("C1", "D", "  PI.1 \t"))
		require.True(t, ok)
		assert.Equal(t, "PI.1", loc)
	})

	t.Run("trims information separators", func(t *testing.T) {
		loc, ok := Locator(row("C1", "D", "\x1fPI.1\x1c"))
		require.True(t, ok)
		assert.Equal(t, "PI.1", loc)
		assert.Equal(t, types.CategoryPI, Classify(loc))
	})

	t.Run("blank locator is rejected", func(t *testing.T) {
		_, ok := Locator(row("C1", "D", "   "))
		assert.False(t, ok)
	})

	t.Run("separator-only locator is rejected", func(t *testing.T) {
		_, ok := Locator(row("C1", "D", "\x1d \x1e"))
		assert.False(t, ok)
	})

	t.Run("empty locator is rejected", func(t *testing.T) {
		_, ok := Locator(row("C1", "D", ""))
		assert.False(t, ok)
	})

	t.Run("missing locator column is rejected", func(t *testing.T) {
		_, ok := Locator(make([]string, LocatorColumn))
		assert.False(t, ok)
	})
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "PI.1", Trim("\u00a0PI.1\u3000"))
	assert.Equal(t, "A B", Trim("\x1c\x1d A B \x1e\x1f"))
	assert.Equal(t, "\x1bPI.1", Trim("\x1bPI.1"))
	assert.Equal(t, "", Trim("\x1f"))
}

func TestNewSample(t *testing.T) {
	t.Run("short values are kept as is", func(t *testing.T) {
		sample, err := NewSample("PI.12345", row("C001", "Some description", "PI.12345"))
		require.NoError(t, err)
		assert.Equal(t, types.SampleRecord{
			Locator:     "PI.12345",
			Code:        "C001",
			Description: "Some description",
		}, sample)
	})

	t.Run("long values are truncated", func(t *testing.T) {
		locator := "OTHER." + strings.Repeat("9", 40)
		desc := strings.Repeat("d", 80)

		sample, err := NewSample(locator, row("C002", desc, locator))
		require.NoError(t, err)
		assert.Equal(t, locator[:MaxLocatorLength], sample.Locator)
		assert.Equal(t, desc[:MaxDescriptionLength], sample.Description)
	})

	t.Run("truncation counts characters", func(t *testing.T) {
		desc := strings.Repeat("ó", 60)

		sample, err := NewSample("PI.1", row("C003", desc, "PI.1"))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("ó", MaxDescriptionLength), sample.Description)
	})

	t.Run("code is not trimmed", func(t *testing.T) {
		sample, err := NewSample("PI.1", row(" C004 ", "x", "PI.1"))
		require.NoError(t, err)
		assert.Equal(t, " C004 ", sample.Code)
	})

	t.Run("row without description column", func(t *testing.T) {
		_, err := NewSample("PI.1", []string{"0", "C005"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShortRow))
	})
}
