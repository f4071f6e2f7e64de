package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d clients, have %d", want, h.ClientCount())
}

func testClient(userID uuid.UUID) *Client {
	return &Client{userID: userID, send: make(chan []byte, 8)}
}

func TestHubDeliversToTargetUserOnly(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	alice := uuid.New()
	bob := uuid.New()
	aliceClient := testClient(alice)
	bobClient := testClient(bob)

	hub.Register(aliceClient)
	hub.Register(bobClient)
	waitForClients(t, hub, 2)

	hub.SendToUser(alice, []byte("hello"))

	select {
	case msg := <-aliceClient.send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected message: %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for delivery")
	}

	select {
	case msg := <-bobClient.send:
		t.Fatalf("unexpected delivery to other user: %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDeliversToAllUserConnections(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	alice := uuid.New()
	first := testClient(alice)
	second := testClient(alice)

	hub.Register(first)
	hub.Register(second)
	waitForClients(t, hub, 2)

	hub.SendToUser(alice, []byte("ping"))

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.send:
			if string(msg) != "ping" {
				t.Fatalf("unexpected message: %q", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery")
		}
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	client := testClient(uuid.New())
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	if _, ok := <-client.send; ok {
		t.Fatalf("send channel should be closed after unregister")
	}
}

func TestHubDropsSlowConsumer(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	alice := uuid.New()
	slow := &Client{userID: alice, send: make(chan []byte, 1)}
	hub.Register(slow)
	waitForClients(t, hub, 1)

	// Nobody reads slow.send, so the second message overflows it and the
	// hub must evict the client without stalling its own loop.
	hub.SendToUser(alice, []byte("one"))
	hub.SendToUser(alice, []byte("two"))
	waitForClients(t, hub, 0)

	if msg, ok := <-slow.send; !ok || string(msg) != "one" {
		t.Fatalf("expected buffered message before close, got %q ok=%v", msg, ok)
	}
	if _, ok := <-slow.send; ok {
		t.Fatalf("send channel should be closed after eviction")
	}

	// The hub must still serve other clients afterwards.
	healthy := testClient(alice)
	hub.Register(healthy)
	waitForClients(t, hub, 1)
	hub.SendToUser(alice, []byte("three"))
	select {
	case msg := <-healthy.send:
		if string(msg) != "three" {
			t.Fatalf("unexpected message: %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for delivery")
	}
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub(nil)
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	client := testClient(uuid.New())
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("run loop did not exit")
	}
	if _, ok := <-client.send; ok {
		t.Fatalf("send channel should be closed after stop")
	}
}
