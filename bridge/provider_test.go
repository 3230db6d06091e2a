package bridge

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfile/core"
)

func newTestProvider(t *testing.T, b Backend[core.Level], opts ...Option) *Provider[core.Level] {
	t.Helper()
	p, err := NewProvider(b, StandardLevels, opts...)
	require.NoError(t, err)
	return p
}

func TestNewProvider_NilArguments(t *testing.T) {
	_, err := NewProvider[core.Level](nil, StandardLevels)
	assert.ErrorIs(t, err, ErrNilBackend)

	_, err = NewProvider[core.Level](newFakeBackend(), nil)
	assert.ErrorIs(t, err, ErrNilMapper)

	_, err = NewStandardProvider(nil)
	assert.ErrorIs(t, err, ErrNilBackend)
}

func TestProvider_SameCategorySameLogger(t *testing.T) {
	p := newTestProvider(t, newFakeBackend())

	a1, err := p.Logger("Orders")
	require.NoError(t, err)
	a2, err := p.Logger("Orders")
	require.NoError(t, err)
	other, err := p.Logger("Payments")
	require.NoError(t, err)

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, other)
	assert.Equal(t, "Orders", a1.Category())

	l, err := p.CreateLogger("Orders")
	require.NoError(t, err)
	assert.Same(t, a1, l.(*Adapter[core.Level]))
}

func TestProvider_ConcurrentFirstRequestConstructsOnce(t *testing.T) {
	const n = 64
	p := newTestProvider(t, newFakeBackend())

	var constructed atomic.Int32
	release := make(chan struct{})
	build := p.construct
	p.construct = func(category string) *Adapter[core.Level] {
		constructed.Add(1)
		<-release
		return build(category)
	}

	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
		results = make([]*Adapter[core.Level], n)
		errs    = make([]error, n)
	)
	started.Add(n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i], errs[i] = p.Logger("X")
		}(i)
	}
	started.Wait()
	// give the callers time to pile up behind the first construction
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), constructed.Load())
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestProvider_ConcurrentCategories(t *testing.T) {
	p := newTestProvider(t, newFakeBackend())
	categories := []string{"a", "b", "c", "d"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := p.Logger(categories[i%len(categories)])
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for _, c := range categories {
		a1, _ := p.Logger(c)
		a2, _ := p.Logger(c)
		assert.Same(t, a1, a2)
	}
}

func TestProvider_Close(t *testing.T) {
	b := newRulesBackend(core.FilterRule[core.Level]{Block: []core.Level{core.DebugLevel}})
	p := newTestProvider(t, b)

	held, err := p.Logger("held")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err = p.Logger("new-category")
	assert.ErrorIs(t, err, ErrDisposed)
	_, err = p.CreateLogger("held")
	assert.ErrorIs(t, err, ErrDisposed, "cache is cleared on close")

	// loggers handed out before Close keep working
	assert.True(t, held.IsEnabled(Information))
	assert.False(t, held.IsEnabled(Debug))
	held.Log(Information, EventID{}, "after close", nil, DefaultFormatter)
	assert.Len(t, b.Submitted(), 1)
}

func TestProvider_CloseRacesCreation(t *testing.T) {
	p := newTestProvider(t, newFakeBackend())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := p.Logger("cat")
			if err != nil {
				assert.ErrorIs(t, err, ErrDisposed)
				return
			}
			assert.NotNil(t, a)
		}(i)
	}
	require.NoError(t, p.Close())
	wg.Wait()

	_, err := p.Logger("cat")
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestProvider_OnErrorReachesAdapters(t *testing.T) {
	rec := &errorRecorder{}
	p := newTestProvider(t, newFakeBackend(), WithOnError(rec.record))
	a, err := p.Logger("c")
	require.NoError(t, err)

	a.Log(Information, EventID{}, "x", nil, failingFormatter)
	assert.Len(t, rec.Errors(), 1)
}

func TestProvider_GenericBackend(t *testing.T) {
	type severity string
	b := &stringBackend{}
	mapper := func(l LogLevel) (severity, error) {
		switch l {
		case Error, Critical:
			return "high", nil
		case Warning:
			return "medium", nil
		case Information:
			return "low", nil
		}
		return "", &MappingError{Level: l}
	}
	p, err := NewProvider[severity](&genericBackend[severity]{inner: b}, mapper)
	require.NoError(t, err)

	a, err := p.Logger("g")
	require.NoError(t, err)
	assert.True(t, a.IsEnabled(Warning))
	assert.False(t, a.IsEnabled(Debug))

	a.Log(Critical, EventID{}, "boom", nil, DefaultFormatter)
	a.Log(Trace, EventID{}, "dropped", nil, DefaultFormatter)
	assert.Equal(t, []string{"high:boom"}, b.lines)
}

type stringBackend struct {
	mu    sync.Mutex
	lines []string
}

type genericBackend[L ~string] struct {
	inner *stringBackend
}

func (g *genericBackend[L]) Submit(e Entry[L]) error {
	g.inner.mu.Lock()
	defer g.inner.mu.Unlock()
	g.inner.lines = append(g.inner.lines, string(e.Level)+":"+e.Message)
	return nil
}

func (g *genericBackend[L]) Hierarchy() core.Hierarchy { return core.NewHierarchy("generic") }
