package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proveo/clientkit/pkg/statemachine"
)

const (
	stateOff statemachine.State = "off"
	stateOn  statemachine.State = "on"

	eventTurnOn  statemachine.Event = "turnOn"
	eventTurnOff statemachine.Event = "turnOff"
)

func newToggle() *statemachine.Machine {
	m := statemachine.New(stateOff)
	m.AddTransition(stateOff, stateOn, eventTurnOn)
	m.AddTransition(stateOn, stateOff, eventTurnOff)
	return m
}

func TestFire_ValidTransition(t *testing.T) {
	t.Parallel()
	m := newToggle()
	require.Equal(t, stateOff, m.Current())

	require.NoError(t, m.Fire(context.Background(), eventTurnOn))
	assert.Equal(t, stateOn, m.Current())
}

func TestFire_NoTransition(t *testing.T) {
	t.Parallel()
	m := newToggle()

	err := m.Fire(context.Background(), eventTurnOff)
	require.Error(t, err)
	assert.True(t, statemachine.IsNoTransitionError(err))
	assert.Equal(t, stateOff, m.Current())

	var nte *statemachine.NoTransitionError
	require.ErrorAs(t, err, &nte)
	assert.Equal(t, stateOff, nte.From)
	assert.Equal(t, eventTurnOff, nte.Event)
}

func TestFire_ActionsRunBeforeStateChange(t *testing.T) {
	t.Parallel()
	var observed statemachine.State

	m := statemachine.New(stateOff)
	m.AddTransition(stateOff, stateOn, eventTurnOn,
		func(ctx context.Context, from, to statemachine.State, event statemachine.Event) error {
			observed = from
			return nil
		})

	require.NoError(t, m.Fire(context.Background(), eventTurnOn))
	assert.Equal(t, stateOff, observed)
	assert.Equal(t, stateOn, m.Current())
}

func TestFire_ActionErrorAbortsTransition(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	m := statemachine.New(stateOff)
	m.AddTransition(stateOff, stateOn, eventTurnOn,
		func(ctx context.Context, from, to statemachine.State, event statemachine.Event) error {
			return boom
		})

	err := m.Fire(context.Background(), eventTurnOn)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, stateOff, m.Current())
}

func TestCan(t *testing.T) {
	t.Parallel()
	m := newToggle()
	assert.True(t, m.Can(eventTurnOn))
	assert.False(t, m.Can(eventTurnOff))
}

func TestResetAndForce(t *testing.T) {
	t.Parallel()
	m := newToggle()
	require.NoError(t, m.Fire(context.Background(), eventTurnOn))

	m.Reset()
	assert.Equal(t, stateOff, m.Current())

	m.Force(stateOn)
	assert.Equal(t, stateOn, m.Current())
}
