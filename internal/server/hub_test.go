package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// TestHubInitialSendDuringBroadcast connects clients while a broadcast
// storm is running. Every client must receive its initial message even
// when concurrent broadcasts fill buffers and drop slow consumers.
func TestHubInitialSendDuringBroadcast(t *testing.T) {
	hub := NewHub()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, []byte(`{"seq":0}`))
	}))
	t.Cleanup(ts.Close)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast([]byte(`{"seq":1}`))
			}
		}
	}()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	for i := 0; i < 25; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("Dial %d failed: %v", i, err)
		}

		// The initial message is queued before any broadcast can reach
		// this client, so it is always the first frame.
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, message, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("Client %d read failed: %v", i, err)
		}
		if string(message) != `{"seq":0}` {
			t.Fatalf("Client %d first frame = %s, want the initial message", i, message)
		}
		conn.Close()
	}

	close(stop)
	wg.Wait()
}
