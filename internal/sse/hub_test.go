package sse

import (
	"testing"
	"time"

	"github.com/mcoot/feastgame/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "tile-placed",
			data:      `{"type":"tile-placed"}`,
			expected:  "event: tile-placed\ndata: {\"type\":\"tile-placed\"}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "feast-updated",
			data:      "{\n  \"filled\": 3\n}",
			expected:  "event: feast-updated\ndata: {\ndata:   \"filled\": 3\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single line", "hello", []string{"hello"}},
		{"two lines", "line1\nline2", []string{"line1", "line2"}},
		{"trailing newline", "line1\n", []string{"line1"}},
		{"empty string", "", []string{""}},
		{"crlf line endings", "line1\r\nline2\r\n", []string{"line1", "line2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	if !hub.Register(client) {
		t.Fatal("Register() = false on a running hub")
	}

	// Give the hub time to process registration
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.BroadcastEvent("test-event", "test data")

	select {
	case msg := <-client.send:
		expected := "event: test-event\ndata: test data\n\n"
		if string(msg) != expected {
			t.Errorf("client received %q, want %q", string(msg), expected)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive message")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d after unregister, want 0", hub.ClientCount())
	}
	if _, ok := <-client.send; ok {
		t.Error("client send channel still open after unregister")
	}
}

func TestHub_BroadcastToMultipleClients(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	clients := []*Client{NewClient(hub), NewClient(hub), NewClient(hub)}
	for _, c := range clients {
		hub.Register(c)
	}
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 3 {
		t.Errorf("ClientCount() = %d, want 3", hub.ClientCount())
	}

	hub.BroadcastEvent("update", "data")

	for i, client := range clients {
		select {
		case msg := <-client.send:
			expected := "event: update\ndata: data\n\n"
			if string(msg) != expected {
				t.Errorf("client %d received %q, want %q", i+1, string(msg), expected)
			}
		case <-time.After(100 * time.Millisecond):
			t.Errorf("client %d did not receive message", i+1)
		}
	}
}

func TestHub_RegisterAfterClose(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	hub.Close()
	hub.Close()
	time.Sleep(10 * time.Millisecond)

	if hub.Register(NewClient(hub)) {
		t.Error("Register() = true on a closed hub")
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	hub1 := manager.GetOrCreateHub("session-1")
	if hub1 == nil {
		t.Fatal("GetOrCreateHub() returned nil")
	}
	if hub2 := manager.GetOrCreateHub("session-1"); hub1 != hub2 {
		t.Error("GetOrCreateHub() returned different hub for same session")
	}
	if hub3 := manager.GetOrCreateHub("session-2"); hub1 == hub3 {
		t.Error("GetOrCreateHub() returned same hub for different sessions")
	}
}

func TestHubManager_GetHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	if hub := manager.GetHub("missing"); hub != nil {
		t.Error("GetHub() returned non-nil for missing session")
	}

	created := manager.GetOrCreateHub("session-1")
	if hub := manager.GetHub("session-1"); hub != created {
		t.Error("GetHub() returned different hub than created")
	}
}

func TestHubManager_RemoveHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub := manager.GetOrCreateHub("session-1")
	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	manager.RemoveHub("session-1")

	if manager.GetHub("session-1") != nil {
		t.Error("GetHub() returned non-nil after RemoveHub")
	}
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("client received a message instead of a close")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client was not disconnected")
	}
}

func TestHubManager_ReleaseStopsHubAfterLastWatcher(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	first := manager.Acquire("session-1")
	second := manager.Acquire("session-1")
	if first != second {
		t.Fatal("Acquire() returned different hubs for same session")
	}

	manager.Release("session-1", first)
	if manager.GetHub("session-1") != first {
		t.Error("hub was stopped while a watcher remained")
	}

	manager.Release("session-1", second)
	if manager.GetHub("session-1") != nil {
		t.Error("hub survived its last watcher")
	}
	if again := manager.Acquire("session-1"); again == first {
		t.Error("Acquire() reused a released hub")
	}
}

func TestHubManager_ReleaseAfterRemoveIsNoop(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	stale := manager.Acquire("session-1")
	manager.RemoveHub("session-1")
	fresh := manager.Acquire("session-1")

	manager.Release("session-1", stale)
	if manager.GetHub("session-1") != fresh {
		t.Error("releasing a removed hub stopped its replacement")
	}
}
