package throwing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func runEscalating() (err error) {
	defer Recover(&err)

	UncheckedConsumer(func(int) error { return errCustom })(1)
	return nil
}

func TestRecover_Escalation(t *testing.T) {
	t.Parallel()

	err := runEscalating()
	require.Error(t, err)
	assert.Equal(t, "custom exception message", err.Error())
	assert.ErrorIs(t, err, errCustom)

	var ue *UncheckedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errCustom, ue.Cause())
}

func TestRecover_NoPanic(t *testing.T) {
	t.Parallel()

	run := func() (err error) {
		defer Recover(&err)
		return nil
	}

	assert.NoError(t, run())
}

func TestRecover_ForeignPanicIsRepanicked(t *testing.T) {
	t.Parallel()

	run := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}

	require.PanicsWithValue(t, "boom", func() { _ = run() })

	foreign := errors.New("foreign")
	runErr := func() (err error) {
		defer Recover(&err)
		panic(foreign)
	}

	require.PanicsWithError(t, "foreign", func() { _ = runErr() })
}

func TestRecover_NilDestination(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		defer Recover(nil)
		UncheckedSupplier(func() (int, error) { return 0, errCustom })()
	})
}

func TestRecoverAndLog(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	run := func() (err error) {
		defer RecoverAndLog(logger, "import", &err)

		UncheckedBiFunction(alwaysFails)(1, 2)
		return nil
	}

	err := run()
	assert.ErrorIs(t, err, errCustom)
	require.Len(t, logger.lines, 1)
	assert.Equal(t, "import: unchecked failure: custom exception message", logger.lines[0])
}

func TestRecoverAndLog_NilLogger(t *testing.T) {
	t.Parallel()

	run := func() (err error) {
		defer RecoverAndLog(nil, "import", &err)

		UncheckedBiFunction(alwaysFails)(1, 2)
		return nil
	}

	assert.ErrorIs(t, run(), errCustom)
}

func TestRecoverAndLog_ForeignPanicIsRepanicked(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	run := func() (err error) {
		defer RecoverAndLog(logger, "import", &err)
		panic("boom")
	}

	require.PanicsWithValue(t, "boom", func() { _ = run() })
	assert.Empty(t, logger.lines)
}

func TestChecked(t *testing.T) {
	t.Parallel()

	v, err := Checked(UncheckedSupplier(func() (int, error) { return 42, nil }))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Checked(UncheckedSupplier(func() (int, error) { return 42, errCustom }))
	assert.ErrorIs(t, err, errCustom)
	assert.Equal(t, 0, v)

	sumOf := UncheckedBiFunction(sum)
	v, err = Checked(func() int { return sumOf(21, 21) })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestCheckedRun(t *testing.T) {
	t.Parallel()

	consume := UncheckedConsumer(func(i int) error {
		if i < 0 {
			return errCustom
		}
		return nil
	})

	assert.NoError(t, CheckedRun(func() { consume(1) }))
	assert.ErrorIs(t, CheckedRun(func() { consume(-1) }), errCustom)
	require.PanicsWithValue(t, "boom", func() { _ = CheckedRun(func() { panic("boom") }) })
}

func TestAsUnchecked(t *testing.T) {
	t.Parallel()

	ue, ok := AsUnchecked(&UncheckedError{cause: errCustom})
	require.True(t, ok)
	assert.Equal(t, errCustom, ue.Cause())

	_, ok = AsUnchecked(errCustom)
	assert.False(t, ok)

	_, ok = AsUnchecked("boom")
	assert.False(t, ok)
}
