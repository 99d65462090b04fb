package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"cpu", CPU, false},
		{"FILESYSTEM", Filesystem, false},
		{" Memory ", Memory, false},
		{"network", Network, false},
		{"performance", Performance, false},
		{"gpu", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategories(t *testing.T) {
	got, err := ParseCategories(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories(), got)

	got, err = ParseCategories([]string{"memory", "cpu", "MEMORY"})
	require.NoError(t, err)
	assert.Equal(t, []Category{Memory, CPU}, got)

	_, err = ParseCategories([]string{"cpu", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "PERFORMANCE", Performance.String())
	assert.Equal(t, "UNKNOWN", Category(42).String())
	assert.NotContains(t, DefaultCategories(), Performance)
	assert.Len(t, AllCategories(), 5)
}
