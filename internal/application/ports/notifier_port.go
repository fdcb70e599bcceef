package ports

import (
	"context"
	"time"
)

// Tipos de evento publicados por la aplicación.
const (
	EventOrderCommitted = "order.committed"
	EventLowStock       = "stock.low"
)

// Event mensaje enviado al notificador externo.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Notifier define el puerto de salida para avisar a sistemas externos (webhook, cola, mock).
// Se invoca siempre después del commit: un error aquí nunca revierte datos ya confirmados.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}
