package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
)

func entries(pairs []*doctor.Pair) []doctor.Entry {
	r := doctor.NewRunner(nil)
	r.AddPairs(pairs)
	return r.List()
}

func TestMacBookPro102_AllCategories(t *testing.T) {
	pairs, err := Build(Options{System: "MacBookPro10,2", Categories: AllCategories()})
	require.NoError(t, err)

	assert.Equal(t, []doctor.Entry{
		{Check: "core_count", Data: "sysconf", Category: "CPU"},
		{Check: "percent_free:/", Data: "mounts", Category: "FILESYSTEM"},
		{Check: "physical_size", Data: "sysconf", Category: "MEMORY"},
		{Check: "stream_triad", Data: "stream", Category: "PERFORMANCE"},
	}, entries(pairs))

	// core_count and physical_size share one sysconf instance.
	assert.Same(t, pairs[0].Data, pairs[2].Data)
}

func TestMacBookPro102_DefaultCategoriesSkipPerformance(t *testing.T) {
	pairs, err := Build(Options{System: "macbookpro10,2", Categories: DefaultCategories()})
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.NotEqual(t, "PERFORMANCE", p.Category)
	}
}

func TestMacBookPro102_SingleCategory(t *testing.T) {
	pairs, err := Build(Options{System: "MacBookPro10,2", Categories: []Category{Memory}})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "physical_size", pairs[0].Check.Name())
}

func TestLinuxCustom_RequiresConfig(t *testing.T) {
	_, err := Build(Options{System: "linux_custom", Categories: DefaultCategories()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingConfig))
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestLinuxCustom_UnparsableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0600))

	_, err := Build(Options{System: "linux_custom", ConfigFile: path, Categories: DefaultCategories()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestLinuxCustom_FromDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.yaml")
	doc := `cpu:
  core_count:
    num_cores: 2
disk:
  percent_free:
    - filesystem: /
      percent: 5
    - filesystem: /var
      percent: 10
memory:
  physical_size:
    mem_size: 17179869184
    tolerance: 1048576
performance:
  stream:
    triad: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	pairs, err := Build(Options{System: "linux_custom", ConfigFile: path, Categories: AllCategories()})
	require.NoError(t, err)

	assert.Equal(t, []doctor.Entry{
		{Check: "core_count", Data: "sysconf", Category: "CPU"},
		{Check: "percent_free:/", Data: "mounts", Category: "FILESYSTEM"},
		{Check: "percent_free:/var", Data: "mounts", Category: "FILESYSTEM"},
		{Check: "physical_size", Data: "sysconf", Category: "MEMORY"},
		{Check: "stream_triad", Data: "stream", Category: "PERFORMANCE"},
	}, entries(pairs))

	assert.Same(t, pairs[1].Data, pairs[2].Data)
	assert.Same(t, pairs[0].Data, pairs[3].Data)
}

func TestLinuxCustom_MissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cpu.core_count]\nnum_cores = 8\n"), 0600))

	pairs, err := Build(Options{System: "linux_custom", ConfigFile: path, Categories: AllCategories()})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "core_count", pairs[0].Check.Name())
}
