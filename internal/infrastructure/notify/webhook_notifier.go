// Package notify publica eventos de dominio hacia sistemas externos.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/ports"
)

// WebhookNotifier envía cada evento como JSON por POST a una URL fija.
type WebhookNotifier struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookNotifier construye el notificador. timeout <= 0 usa 10s.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "ordenes-api").
		SetTimeout(timeout)
	return &WebhookNotifier{httpClient: c, url: url}
}

type payload struct {
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Data       any    `json:"data"`
}

// Publish implementa ports.Notifier. Cualquier respuesta no 2xx es error.
func (n *WebhookNotifier) Publish(ctx context.Context, ev ports.Event) error {
	at := ev.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Event-Type", ev.Type).
		SetBody(payload{Type: ev.Type, OccurredAt: at.UTC().Format(time.RFC3339), Data: ev.Payload}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("notify: enviar %s: %w", ev.Type, err)
	}
	if resp.IsError() {
		return fmt.Errorf("notify: %s rechazado por webhook: HTTP %d", ev.Type, resp.StatusCode())
	}
	return nil
}

// Nop descarta los eventos; se usa cuando no hay webhook configurado.
type Nop struct{}

// Publish implementa ports.Notifier.
func (Nop) Publish(context.Context, ports.Event) error { return nil }

// New devuelve el webhook si url no está vacío, si no Nop.
func New(url string, timeout time.Duration) ports.Notifier {
	if url == "" {
		return Nop{}
	}
	return NewWebhookNotifier(url, timeout)
}
