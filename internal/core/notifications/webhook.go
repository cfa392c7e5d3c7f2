package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// WebhookNotifier delivers events as JSON POSTs to a single subscriber URL.
// Events are queued on a buffered channel and sent by a background goroutine
// so a slow subscriber never blocks a transaction.
type WebhookNotifier struct {
	url    string
	client *http.Client
	queue  chan Event
	done   chan struct{}
}

// NewWebhookNotifier starts the delivery goroutine.
func NewWebhookNotifier(url string) *WebhookNotifier {
	n := &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		queue:  make(chan Event, 64),
		done:   make(chan struct{}),
	}
	go n.run()
	return n
}

// Notify enqueues the event. If the queue is full the event is dropped and
// a warning is logged; deliveries are best-effort.
func (n *WebhookNotifier) Notify(_ context.Context, event Event) {
	select {
	case n.queue <- event:
	default:
		slog.Warn("webhook queue full, dropping event", slog.String("event", event.Name))
	}
}

// Close stops the delivery goroutine after draining queued events.
func (n *WebhookNotifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *WebhookNotifier) run() {
	defer close(n.done)
	for event := range n.queue {
		if err := n.send(event); err != nil {
			slog.Error("webhook delivery failed",
				slog.String("event", event.Name),
				slog.String("error", err.Error()))
			// One retry after a short pause, then give up.
			time.Sleep(2 * time.Second)
			if err := n.send(event); err != nil {
				slog.Error("webhook retry failed",
					slog.String("event", event.Name),
					slog.String("error", err.Error()))
			}
		}
	}
}

func (n *WebhookNotifier) send(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CashPoint-Webhook/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("subscriber returned status %d", resp.StatusCode)
}
