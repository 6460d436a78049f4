package shutdown

import (
	"testing"
	"time"

	"firearm-inventory/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOnce(t *testing.T) {
	m := NewManager(logger.NewNop(), time.Second)

	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeoutMovesOn(t *testing.T) {
	m := NewManager(logger.NewNop(), 10*time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register(Func(func() { ran = true }))
	m.Register(Func(func() { <-release }))

	m.Shutdown()
	assert.True(t, ran)
}

func TestListenStop(t *testing.T) {
	m := NewManager(logger.NewNop(), time.Second)
	stop := m.Listen()
	stop()
	m.Shutdown()
}
