package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reeyo/internal/domain/entities"
)

func TestHub_PanelPerSession(t *testing.T) {
	loader := newGatedLoader("1", "2")
	hub := NewHub[entities.Customer, entities.CustomerDetails](loader, time.Minute)

	a := hub.Panel("session-a")
	b := hub.Panel("session-b")
	require.NotSame(t, a, b)
	assert.Same(t, a, hub.Panel("session-a"))
	assert.Equal(t, 2, hub.Len())

	a.Open("1")
	assert.Equal(t, StateIdle, b.Snapshot().State)
	loader.release("1")
}

func TestHub_LookupDoesNotCreate(t *testing.T) {
	hub := NewHub[entities.Customer, entities.CustomerDetails](newGatedLoader(), time.Minute)

	_, ok := hub.Lookup("nobody")
	assert.False(t, ok)
	assert.Zero(t, hub.Len())
}

func TestHub_CloseClosesThePanel(t *testing.T) {
	loader := newGatedLoader("1")
	hub := NewHub[entities.Customer, entities.CustomerDetails](loader, time.Minute)
	p := hub.Panel("s")
	p.Open("1")

	hub.Close("s")

	assert.Equal(t, StateIdle, p.Snapshot().State)
	_, ok := hub.Lookup("s")
	assert.False(t, ok)
	loader.release("1")
}

func TestHub_ExpiredPanelsAreClosed(t *testing.T) {
	loader := newGatedLoader("1")
	hub := NewHub[entities.Customer, entities.CustomerDetails](loader, 20*time.Millisecond)
	p := hub.Panel("s")
	p.Open("1")

	assert.Eventually(t, func() bool {
		return p.Snapshot().State == StateIdle
	}, 2*time.Second, 10*time.Millisecond)
	loader.release("1")
}

func TestHub_MirrorReachesEverySession(t *testing.T) {
	loader := newGatedLoader("1")
	hub := NewHub[entities.Customer, entities.CustomerDetails](loader, time.Minute)
	a, b := hub.Panel("a"), hub.Panel("b")
	a.Open("1")
	b.Open("1")

	hub.Mirror(entities.Customer{ID: "1", Name: "customer 1", Status: entities.CustomerStatusBlocked})

	assert.Equal(t, entities.CustomerStatusBlocked, a.Snapshot().Entity.Status)
	assert.Equal(t, entities.CustomerStatusBlocked, b.Snapshot().Entity.Status)
	loader.release("1")
}

func TestHub_RefreshSyncsEverySession(t *testing.T) {
	loader := newGatedLoader("1", "2")
	hub := NewHub[entities.Customer, entities.CustomerDetails](loader, time.Minute)
	a, b, idle := hub.Panel("a"), hub.Panel("b"), hub.Panel("idle")
	a.Open("1")
	b.Open("2")

	hub.Refresh([]entities.Customer{{ID: "1", Name: "customer 1", Status: entities.CustomerStatusBlocked}})

	assert.Equal(t, entities.CustomerStatusBlocked, a.Snapshot().Entity.Status)
	assert.Equal(t, StateNotFound, b.Snapshot().State)
	assert.Equal(t, StateIdle, idle.Snapshot().State)
	loader.release("1")
	loader.release("2")
}
