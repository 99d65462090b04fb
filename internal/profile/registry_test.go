package profile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
)

type stubBuilder struct {
	name  string
	pairs []*doctor.Pair
	calls int
}

func (b *stubBuilder) Name() string { return b.name }

func (b *stubBuilder) Build(Options) ([]*doctor.Pair, error) {
	b.calls++
	return b.pairs, nil
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&stubBuilder{name: "alpha"}))

	err := r.Register(&stubBuilder{name: "alpha"})
	assert.ErrorIs(t, err, ErrProfileAlreadyRegistered)

	assert.ErrorIs(t, r.Register(&stubBuilder{name: " "}), ErrInvalidProfileName)
	assert.ErrorIs(t, r.Register(nil), ErrInvalidProfileName)
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "MacBookPro10,2", "alpha"} {
		require.NoError(t, r.Register(&stubBuilder{name: name}))
	}
	assert.Equal(t, []string{"MacBookPro10,2", "alpha", "zeta"}, r.Names())
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	exact := &stubBuilder{name: "Linux"}
	lower := &stubBuilder{name: "linux"}
	require.NoError(t, r.Register(exact))
	require.NoError(t, r.Register(lower))

	b, ok := r.Get("linux")
	require.True(t, ok)
	assert.Same(t, lower, b)

	b, ok = r.Get("LINUX")
	require.True(t, ok)
	assert.Contains(t, []Builder{exact, lower}, b)

	_, ok = r.Get("windows")
	assert.False(t, ok)
}

func TestRegistry_BuildUnknown(t *testing.T) {
	r := NewRegistry()
	b := &stubBuilder{name: "known"}
	require.NoError(t, r.Register(b))

	_, err := r.Build(Options{System: "unknown"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownProfile))
	assert.True(t, errors.Is(err, errors.ErrConfig))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Zero(t, b.calls)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Register(&stubBuilder{name: string(rune('a' + i))})
			_ = r.Names()
			_, _ = r.Get("a")
		}()
	}
	wg.Wait()
	assert.Len(t, r.Names(), 20)
}

func TestRegister_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register(MacBookPro102{})
	})
}

func TestDefault_BuiltinProfiles(t *testing.T) {
	assert.Equal(t, []string{"MacBookPro10,2", "linux_custom"}, Names())
}
