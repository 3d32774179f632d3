package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuiltinsLoad(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	q, ok := c.Get("cons-prof-coffee")
	require.True(t, ok)
	assert.Equal(t, domain.TypeProfitability, q.Type)
	assert.Equal(t, "McKinsey", q.Company)

	assert.NotEmpty(t, c.List(domain.TrackConsulting, ""))
	assert.NotEmpty(t, c.List(domain.TrackProductManagement, ""))
}

func TestList_Filters(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	sizing := c.List(domain.TrackConsulting, domain.TypeMarketSizing)
	require.NotEmpty(t, sizing)
	for _, q := range sizing {
		assert.Equal(t, domain.TypeMarketSizing, q.Type)
		assert.Equal(t, domain.TrackConsulting, q.Track)
	}

	assert.Empty(t, c.List(domain.TrackProductManagement, domain.TypeProfitability))
}

func TestLoadDir_AddsAndReplaces(t *testing.T) {
	dir := t.TempDir()
	yml := `questions:
  - id: cons-prof-coffee
    track: consulting
    type: profitability
    title: Replaced title
    description: Replaced description.
    difficulty: easy
  - id: custom-1
    track: consulting
    type: market-sizing
    title: Piano tuners in Chicago
    description: Estimate the number of piano tuners in Chicago.
    difficulty: easy
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(yml), 0644))

	c, err := New()
	require.NoError(t, err)
	before := len(c.List("", ""))

	require.NoError(t, c.LoadDir(dir))

	q, ok := c.Get("cons-prof-coffee")
	require.True(t, ok)
	assert.Equal(t, "Replaced title", q.Title)

	_, ok = c.Get("custom-1")
	assert.True(t, ok)
	assert.Equal(t, before+1, len(c.List("", "")))
}

func TestLoadDir_RejectsInvalidQuestion(t *testing.T) {
	dir := t.TempDir()
	yml := `questions:
  - id: bad-1
    track: consulting
    type: product-sense
    title: Wrong track for type
    description: x
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(yml), 0644))

	c, err := New()
	require.NoError(t, err)

	err = c.LoadDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
