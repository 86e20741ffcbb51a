package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// AlertNotifier pushes emergency consultation ids over a Postgres
// LISTEN/NOTIFY channel so monitoring consumers learn about emergencies
// without polling.
type AlertNotifier struct {
	DB      *sql.DB
	DSN     string
	Channel string
}

// NewAlertNotifier constructs a notifier. The DSN is needed separately
// because pq's listener opens its own dedicated connection.
func NewAlertNotifier(db *sql.DB, dsn, channel string) *AlertNotifier {
	return &AlertNotifier{DB: db, DSN: dsn, Channel: channel}
}

// Notify publishes the consultation id on the alert channel.
func (n *AlertNotifier) Notify(ctx context.Context, consultationID string) error {
	_, err := n.DB.ExecContext(ctx, `SELECT pg_notify($1, $2)`, n.Channel, consultationID)
	return err
}

// Listen subscribes to the alert channel and yields consultation ids as
// they arrive. The returned channel is closed when ctx is cancelled.
func (n *AlertNotifier) Listen(ctx context.Context) (<-chan string, error) {
	listener := pq.NewListener(n.DSN, 10*time.Second, time.Minute, nil)
	if err := listener.Listen(n.Channel); err != nil {
		_ = listener.Close()
		return nil, err
	}
	ch := make(chan string)
	go func() {
		defer func() {
			_ = listener.Close()
			close(ch)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case note, ok := <-listener.Notify:
				if !ok {
					return
				}
				// Notify can deliver nil after a reconnect.
				if note == nil {
					continue
				}
				select {
				case ch <- note.Extra:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}
