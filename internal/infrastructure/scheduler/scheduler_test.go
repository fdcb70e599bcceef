package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingChecker struct {
	calls int
	err   error
}

func (c *countingChecker) NotifyLowStock(context.Context) (int, error) {
	c.calls++
	return 2, c.err
}

func TestStart_ExpresionInvalida(t *testing.T) {
	s := New("no es cron", &countingChecker{}, nil)
	assert.Error(t, s.Start())
}

func TestStart_SinExpresionNoProgramaNada(t *testing.T) {
	s := New("", &countingChecker{}, nil)
	require.NoError(t, s.Start())
	assert.Empty(t, s.cron.Entries())
	s.Stop()
}

func TestCheckLowStock_InvocaAlChecker(t *testing.T) {
	c := &countingChecker{err: errors.New("db caída")}
	s := New("@every 1h", c, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Len(t, s.cron.Entries(), 1)
	s.checkLowStock()
	assert.Equal(t, 1, c.calls)
}
