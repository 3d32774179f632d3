package rubric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_BuiltinsValid(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	for _, qt := range []domain.QuestionType{
		domain.TypeProfitability, domain.TypeMarketEntry, domain.TypeMarketSizing,
		domain.TypeMergerAcq, domain.TypeProductSense, domain.TypeExecution, domain.TypeStrategy,
	} {
		cfg, ok := s.Get(qt)
		require.True(t, ok, "expected built-in rubric for %s", qt)

		sum := 0
		for _, d := range cfg.Dimensions {
			sum += d.Weight
			assert.NotEmpty(t, d.Criteria[5], "%s/%s must define level-5 indicators", qt, d.Name)
		}
		assert.Equal(t, 100, sum, "%s weights must sum to 100", qt)
	}
}

func TestStore_Get_AbsentIsNotAnError(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	cfg, ok := s.Get(domain.TypeBehavioral)
	assert.False(t, ok)
	assert.Nil(t, cfg)
}

func TestStore_ExcellenceIndicators(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	cfg, ok := s.Get(domain.TypeProfitability)
	require.True(t, ok)

	indicators := cfg.ExcellenceIndicators()
	assert.NotEmpty(t, indicators)
	assert.Contains(t, indicators, "Lays out a MECE profit tree up front and navigates it explicitly")
}

func TestLoadDir_OverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	yml := `question_type: profitability
dimensions:
  - name: Structure
    weight: 60
    criteria:
      5: ["Perfect tree"]
  - name: Communication
    weight: 40
    criteria:
      5: ["Perfect narration"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profitability.yaml"), []byte(yml), 0644))

	s, err := NewStore()
	require.NoError(t, err)
	require.NoError(t, s.LoadDir(dir))

	cfg, ok := s.Get(domain.TypeProfitability)
	require.True(t, ok)
	assert.Len(t, cfg.Dimensions, 2)
	assert.Equal(t, 60, cfg.WeightFor("Structure"))
}

func TestLoadDir_RejectsInvalidRubric(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{
			"weights do not sum to 100",
			"question_type: profitability\ndimensions:\n  - name: A\n    weight: 50\n    criteria:\n      5: [\"x\"]\n",
		},
		{
			"missing level-5 indicators",
			"question_type: profitability\ndimensions:\n  - name: A\n    weight: 100\n    criteria:\n      3: [\"x\"]\n",
		},
		{
			"criteria level out of range",
			"question_type: profitability\ndimensions:\n  - name: A\n    weight: 100\n    criteria:\n      5: [\"x\"]\n      6: [\"y\"]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(tt.yml), 0644))

			s, err := NewStore()
			require.NoError(t, err)

			err = s.LoadDir(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}
