package events

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var adopted = domain.Event{Type: domain.EventEntityAdopted, EntityID: "cat-1", Value: "7"}

func TestBusFansOutToEverySubscriber(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	first, unsubFirst := bus.Subscribe(1)
	second, unsubSecond := bus.Subscribe(1)
	defer unsubFirst()
	defer unsubSecond()

	bus.Publish(adopted)

	assert.Equal(t, adopted, <-first)
	assert.Equal(t, adopted, <-second)
}

func TestBusDropsForLaggingSubscriber(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	events, unsubscribe := bus.Subscribe(1)
	defer unsubscribe()

	bus.Publish(adopted)
	bus.Publish(domain.Event{Type: domain.EventEntityDonatedTo, EntityID: "cat-1", Value: "10"})

	assert.Equal(t, adopted, <-events)
	select {
	case event := <-events:
		t.Fatalf("unexpected event %v", event)
	default:
	}
}

func TestBusUnsubscribeAndClose(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	events, unsubscribe := bus.Subscribe(0)
	assert.Equal(t, 1, bus.Subscribers())

	unsubscribe()
	unsubscribe()
	_, open := <-events
	assert.False(t, open)
	assert.Zero(t, bus.Subscribers())

	kept, _ := bus.Subscribe(0)
	bus.Close()
	_, open = <-kept
	assert.False(t, open)

	late, _ := bus.Subscribe(0)
	_, open = <-late
	assert.False(t, open)
	bus.Publish(adopted)
}

func dialEvents(t *testing.T, baseURL string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(baseURL, "http")+"/events", nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn
}

func TestHubStreamsEventsAsJSON(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	hub := NewHub(bus, nil)
	server := httptest.NewServer(hub.Handler())
	defer server.Close()

	conn := dialEvents(t, server.URL)
	require.Eventually(t, func() bool { return bus.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	bus.Publish(adopted)

	var got domain.Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, adopted, got)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "UP", health["status"])
	assert.EqualValues(t, 1, health["connections"])

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 && bus.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHubRejectsForeignOrigin(t *testing.T) {
	t.Parallel()

	hub := NewHub(NewBus(nil), nil)
	server := httptest.NewServer(hub.Handler())
	defer server.Close()

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/events", header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHubServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	bus := NewBus(nil)
	hub := NewHub(bus, nil)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx, listener) }()

	conn := dialEvents(t, "http://"+listener.Addr().String())
	defer func() { _ = conn.Close() }()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
}
