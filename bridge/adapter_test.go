package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logfile/core"
)

var hostLevels = []LogLevel{Trace, Debug, Information, Warning, Error, Critical}

func newTestAdapter(t *testing.T, backend Backend[core.Level], category string, opts ...Option) *Adapter[core.Level] {
	t.Helper()
	a, err := NewAdapter(backend, category, StandardLevels, opts...)
	require.NoError(t, err)
	return a
}

func TestNewAdapter_NilArguments(t *testing.T) {
	_, err := NewAdapter[core.Level](nil, "c", StandardLevels)
	assert.ErrorIs(t, err, ErrNilBackend)

	_, err = NewAdapter[core.Level](newFakeBackend(), "c", nil)
	assert.ErrorIs(t, err, ErrNilMapper)
}

func TestIsEnabled_NoneAlwaysFalse(t *testing.T) {
	backends := map[string]Backend[core.Level]{
		"plain":    newFakeBackend(),
		"no rules": newRulesBackend(),
		"allow all": newRulesBackend(core.FilterRule[core.Level]{
			Allow: core.Levels[:],
		}),
	}
	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			a := newTestAdapter(t, b, "c")
			assert.False(t, a.IsEnabled(None))
		})
	}
}

func TestIsEnabled_NoRules(t *testing.T) {
	a := newTestAdapter(t, newRulesBackend(), "c")
	for _, l := range hostLevels {
		assert.True(t, a.IsEnabled(l), l.String())
	}
}

func TestIsEnabled_BlockedLevel(t *testing.T) {
	a := newTestAdapter(t, newRulesBackend(core.FilterRule[core.Level]{
		Block: []core.Level{core.WarnLevel},
	}), "c")

	assert.False(t, a.IsEnabled(Warning))
	assert.True(t, a.IsEnabled(Error))
}

func TestIsEnabled_AllowedLevels(t *testing.T) {
	a := newTestAdapter(t, newRulesBackend(core.FilterRule[core.Level]{
		Allow: []core.Level{core.InfoLevel, core.CriticalLevel},
	}), "c")

	tests := []struct {
		level LogLevel
		want  bool
	}{
		{Trace, false},
		{Debug, false},
		{Information, true},
		{Warning, false},
		{Error, false},
		{Critical, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.IsEnabled(tt.level), tt.level.String())
	}
}

func TestIsEnabled_EveryRuleMustAdmit(t *testing.T) {
	a := newTestAdapter(t, newRulesBackend(
		core.FilterRule[core.Level]{Allow: []core.Level{core.InfoLevel, core.ErrorLevel}},
		core.FilterRule[core.Level]{Block: []core.Level{core.ErrorLevel}},
	), "c")

	assert.True(t, a.IsEnabled(Information))
	assert.False(t, a.IsEnabled(Error))
	assert.False(t, a.IsEnabled(Debug))
}

func TestIsEnabled_NotIntrospectableIsPermissive(t *testing.T) {
	a := newTestAdapter(t, newFakeBackend(), "c")
	for _, l := range hostLevels {
		assert.True(t, a.IsEnabled(l), l.String())
	}
}

type panickingRules struct{ *fakeBackend }

func (panickingRules) FilterRules() []core.FilterRule[core.Level] { panic("config unavailable") }

func TestIsEnabled_RuleSourcePanicIsPermissive(t *testing.T) {
	a := newTestAdapter(t, panickingRules{newFakeBackend()}, "c")
	assert.True(t, a.IsEnabled(Warning))
}

func TestIsEnabled_MappingFailure(t *testing.T) {
	onlyErrors := func(l LogLevel) (core.Level, error) {
		if l == Error {
			return core.ErrorLevel, nil
		}
		return 0, &MappingError{Level: l}
	}
	a, err := NewAdapter[core.Level](newFakeBackend(), "c", onlyErrors)
	require.NoError(t, err)

	assert.True(t, a.IsEnabled(Error))
	assert.False(t, a.IsEnabled(Warning))

	panics, err := NewAdapter[core.Level](newFakeBackend(), "c", func(LogLevel) (core.Level, error) {
		panic("mapper exploded")
	})
	require.NoError(t, err)
	assert.False(t, panics.IsEnabled(Information))
}

func TestLog_UnmappedLevelNeverSubmits(t *testing.T) {
	b := newFakeBackend()
	rec := &errorRecorder{}
	a := newTestAdapter(t, b, "c", WithOnError(rec.record))

	a.Log(None, EventID{}, "state", nil, DefaultFormatter)
	a.Log(LogLevel(99), EventID{ID: 1}, "state", nil, DefaultFormatter)

	assert.Empty(t, b.Submitted())
	errs := rec.Errors()
	require.Len(t, errs, 2)
	var merr *MappingError
	assert.ErrorAs(t, errs[0], &merr)
}

func TestLog_FormatterFailureNeverSubmits(t *testing.T) {
	for name, format := range map[string]Formatter{
		"error": failingFormatter,
		"panic": panickingFormatter,
	} {
		t.Run(name, func(t *testing.T) {
			b := newFakeBackend()
			rec := &errorRecorder{}
			a := newTestAdapter(t, b, "Orders", WithOnError(rec.record))

			assert.NotPanics(t, func() {
				a.Log(Information, EventID{}, "state", nil, format)
			})
			assert.Empty(t, b.Submitted())

			errs := rec.Errors()
			require.Len(t, errs, 1)
			var ferr *FormatterError
			require.ErrorAs(t, errs[0], &ferr)
			assert.Equal(t, "Orders", ferr.Category)

			// the adapter keeps working for later calls
			a.Log(Information, EventID{}, "ok", nil, DefaultFormatter)
			assert.Len(t, b.Submitted(), 1)
		})
	}
}

func TestLog_SubmissionFailureIsSwallowed(t *testing.T) {
	boom := errors.New("disk full")
	b := newFakeBackend()
	b.err = boom
	rec := &errorRecorder{}
	a := newTestAdapter(t, b, "c", WithOnError(rec.record))

	assert.NotPanics(t, func() {
		a.Log(Error, EventID{}, "state", nil, DefaultFormatter)
	})

	errs := rec.Errors()
	require.Len(t, errs, 1)
	var serr *SubmissionError
	require.ErrorAs(t, errs[0], &serr)
	assert.ErrorIs(t, errs[0], boom)
}

func TestLog_SubmissionPanicIsSwallowed(t *testing.T) {
	b := newFakeBackend()
	b.panicWith = "backend exploded"
	rec := &errorRecorder{}
	a := newTestAdapter(t, b, "c", WithOnError(rec.record))

	assert.NotPanics(t, func() {
		a.Log(Error, EventID{}, "state", nil, DefaultFormatter)
	})
	errs := rec.Errors()
	require.Len(t, errs, 1)
	var serr *SubmissionError
	assert.ErrorAs(t, errs[0], &serr)

	// without a hook failures disappear silently
	quiet := newTestAdapter(t, b, "c")
	assert.NotPanics(t, func() {
		quiet.Log(Error, EventID{}, "state", nil, DefaultFormatter)
	})
}

func TestBuild_EventID(t *testing.T) {
	b := newFakeBackend()
	a := newTestAdapter(t, b, "Orders")

	a.Log(Information, EventID{ID: 7, Name: "Started"}, "placed", nil, DefaultFormatter)
	a.Log(Information, EventID{}, "no id", nil, DefaultFormatter)

	entries := b.Submitted()
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].EventID)
	assert.Equal(t, []string{"Bridge", "Orders", "Started"}, entries[0].EventID.Texts)
	assert.Equal(t, []int{BridgeEventCode, 7}, entries[0].EventID.Codes)
	assert.Nil(t, entries[1].EventID)
}

func TestBuild_EventIDSkipsBlankParts(t *testing.T) {
	tests := []struct {
		name     string
		category string
		id       EventID
		want     []string
	}{
		{"blank category", "  ", EventID{ID: 3, Name: "Tick"}, []string{"Bridge", "Tick"}},
		{"blank name", "Jobs", EventID{ID: 3, Name: " "}, []string{"Bridge", "Jobs"}},
		{"both blank", "", EventID{ID: 3}, []string{"Bridge"}},
		{"name only", "", EventID{Name: "Named"}, []string{"Bridge", "Named"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBackend()
			a := newTestAdapter(t, b, tt.category)
			a.Log(Warning, tt.id, "state", nil, DefaultFormatter)

			entries := b.Submitted()
			require.Len(t, entries, 1)
			require.NotNil(t, entries[0].EventID)
			assert.Equal(t, tt.want, entries[0].EventID.Texts)
			assert.Equal(t, []int{BridgeEventCode, tt.id.ID}, entries[0].EventID.Codes)
		})
	}
}

func TestBuild_MessageAndException(t *testing.T) {
	b := newFakeBackend()
	a := newTestAdapter(t, b, "c")
	boom := errors.New("boom")

	withErr := func(state any, err error) (string, error) {
		return state.(string) + ": " + err.Error(), nil
	}
	a.Log(Error, EventID{}, "failed", boom, withErr)
	a.Log(Error, EventID{}, nil, boom, withErr)
	a.Log(Information, EventID{}, "plain", nil, nil)

	entries := b.Submitted()
	require.Len(t, entries, 3)

	assert.Equal(t, "failed: boom", entries[0].Message)
	assert.True(t, entries[0].HasMessage)
	assert.Same(t, boom, entries[0].Exception)

	assert.False(t, entries[1].HasMessage, "nil state has no message")
	assert.Empty(t, entries[1].Message)
	assert.Same(t, boom, entries[1].Exception)

	assert.Equal(t, "plain", entries[2].Message, "nil formatter falls back to DefaultFormatter")
	assert.Nil(t, entries[2].Exception)
}

func TestBuild_HierarchyAndFields(t *testing.T) {
	b := newFakeBackend()
	a := newTestAdapter(t, b, "c")

	a.Log(Debug, EventID{}, Message{Text: "with fields", Fields: []core.Field{core.Int("n", 3)}}, nil, DefaultFormatter)

	entries := b.Submitted()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, core.DebugLevel, e.Level)
	assert.Equal(t, "with fields", e.Message)
	assert.Equal(t, b.hierarchy, e.Hierarchy)
	assert.False(t, e.Time.IsZero())
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "n", e.Fields[0].Key)
}

func TestBeginScope_NoOp(t *testing.T) {
	b := newFakeBackend()
	a := newTestAdapter(t, b, "c")

	s1 := a.BeginScope(map[string]any{"request": 1})
	s2 := a.BeginScope(nil)
	require.NotNil(t, s1)
	assert.NoError(t, s1.Close())
	assert.NoError(t, s1.Close())
	assert.NoError(t, s2.Close())
	assert.Empty(t, b.Submitted())
}

func TestEventID_IsZero(t *testing.T) {
	assert.True(t, EventID{}.IsZero())
	assert.False(t, EventID{ID: 1}.IsZero())
	assert.False(t, EventID{Name: "x"}.IsZero())
}
