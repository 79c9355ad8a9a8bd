package outbox

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"perfume-shop/pkg/metrics"
	"perfume-shop/pkg/rabbit"
)

// Dispatcher drains order events from outbox_events into the broker.
// Rows are claimed with `for update skip locked`, so several dispatchers
// can run side by side without double-publishing a checkout.
type Dispatcher struct {
	Log zerolog.Logger
	DB  *pgxpool.Pool
	Pub *rabbit.EventPublisher

	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	BackoffMax   time.Duration
}

type outboxRow struct {
	id        string
	eventType string
	payload   []byte
	attempts  int
}

func (d *Dispatcher) Run(ctx context.Context) {
	t := time.NewTicker(d.PollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Log.Info().Msg("outbox dispatcher stopped")
			return
		case <-t.C:
			if err := d.drain(ctx); err != nil {
				d.Log.Error().Err(err).Msg("outbox drain failed")
			}
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) error {
	d.refreshPending(ctx)

	tx, err := d.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch, err := claim(ctx, tx, d.BatchSize)
	if err != nil {
		return err
	}

	for _, e := range batch {
		if e.attempts >= d.MaxAttempts {
			d.retire(ctx, tx, e)
			continue
		}

		if err := d.Pub.PublishEvent(ctx, e.id, e.eventType, e.payload, e.attempts); err != nil {
			metrics.OutboxPublishErrorsTotal.Inc()
			if err2 := d.scheduleRetry(ctx, tx, e, err); err2 != nil {
				return err2
			}
			continue
		}

		metrics.OutboxSentTotal.Inc()
		if _, err := tx.Exec(ctx, `update outbox_events set sent_at=now(), last_error=null where id=$1`, e.id); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func claim(ctx context.Context, tx pgx.Tx, limit int) ([]outboxRow, error) {
	rows, err := tx.Query(ctx, `
		select id, event_type, payload::text, attempts
		from outbox_events
		where sent_at is null and next_attempt_at <= now()
		order by created_at
		limit $1
		for update skip locked
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batch []outboxRow
	for rows.Next() {
		var e outboxRow
		var payloadText string
		if err := rows.Scan(&e.id, &e.eventType, &payloadText, &e.attempts); err != nil {
			return nil, err
		}
		e.payload = []byte(payloadText)
		batch = append(batch, e)
	}
	return batch, rows.Err()
}

// retire marks an exhausted event as sent so it stops blocking the queue.
// The confirmation mail already went out synchronously at checkout, so a
// dropped event loses only the notification fan-out.
func (d *Dispatcher) retire(ctx context.Context, tx pgx.Tx, e outboxRow) {
	_, _ = tx.Exec(ctx, `update outbox_events set last_error=$2, sent_at=now() where id=$1`, e.id, "max attempts reached")
	d.Log.Warn().Str("id", e.id).Str("type", e.eventType).Int("attempts", e.attempts).Msg("outbox event retired")
}

func (d *Dispatcher) scheduleRetry(ctx context.Context, tx pgx.Tx, e outboxRow, cause error) error {
	next := time.Now().Add(retryDelay(e.attempts+1, d.BackoffMax))
	_, err := tx.Exec(ctx, `
		update outbox_events
		set attempts = attempts + 1,
		    next_attempt_at = $2,
		    last_error = $3
		where id = $1
	`, e.id, next, cause.Error())
	if err != nil {
		return err
	}
	d.Log.Error().Err(cause).Str("id", e.id).Str("type", e.eventType).Int("attempts", e.attempts+1).Time("next", next).Msg("publish failed, retry scheduled")
	return nil
}

func (d *Dispatcher) refreshPending(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	var n int
	if err := d.DB.QueryRow(ctx, `select count(*) from outbox_events where sent_at is null`).Scan(&n); err != nil {
		return
	}
	metrics.OutboxPending.Set(float64(n))
}

// retryDelay doubles per attempt, starting at one second, capped at max.
func retryDelay(attempt int, max time.Duration) time.Duration {
	d := time.Second
	for i := 1; i < attempt && d < max; i++ {
		d *= 2
	}
	if d > max {
		d = max
	}
	return d
}
