package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sarasblogg/internal/model"
	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/mysql"

	"go.uber.org/zap"
)

const (
	relayBatchSize = 50
	relayInterval  = 5 * time.Second
	relayMaxRetry  = 5
)

// OutboxRelayer drains the blogg outbox: each pending row becomes a
// kafka event plus a mail fanout to subscribed readers. Rows that keep
// failing are parked after relayMaxRetry attempts.
type OutboxRelayer struct {
	outboxRepo *mysql.OutboxRepository
	userRepo   *mysql.UserRepository
	producer   *pkg.KafkaProducer
	smtp       pkg.SMTPConfig
	baseURL    string
}

func NewOutboxRelayer(producer *pkg.KafkaProducer, smtp pkg.SMTPConfig, frontendBaseURL string) *OutboxRelayer {
	return &OutboxRelayer{
		outboxRepo: &mysql.OutboxRepository{},
		userRepo:   &mysql.UserRepository{},
		producer:   producer,
		smtp:       smtp,
		baseURL:    frontendBaseURL,
	}
}

// Run loops until ctx is cancelled.
func (r *OutboxRelayer) Run(ctx context.Context) {
	ticker := time.NewTicker(relayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.DrainOnce(ctx); err != nil {
				pkg.Log.Warn("outbox drain failed", zap.Error(err))
			}
		}
	}
}

// DrainOnce relays one batch of pending rows.
func (r *OutboxRelayer) DrainOnce(ctx context.Context) error {
	rows, err := r.outboxRepo.ListPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	for i := range rows {
		row := &rows[i]
		if err := r.relay(ctx, row); err != nil {
			pkg.Log.Warn("relay outbox row failed",
				zap.Uint64("outbox_id", row.ID),
				zap.Uint64("blogg_id", row.BloggID),
				zap.Error(err))
			if err := r.outboxRepo.MarkRetry(ctx, row.ID, relayMaxRetry); err != nil {
				return err
			}
			continue
		}
		if err := r.outboxRepo.MarkSent(ctx, row.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *OutboxRelayer) relay(ctx context.Context, row *model.BloggOutbox) error {
	if r.producer != nil {
		key := pkg.MakeKeyFromID(row.BloggID)
		if err := r.producer.Send(ctx, key, []byte(row.Payload)); err != nil {
			return err
		}
	}
	return r.fanoutMail(row)
}

// fanoutMail notifies subscribed readers. Individual send failures are
// logged and skipped so one bad address does not block the row.
func (r *OutboxRelayer) fanoutMail(row *model.BloggOutbox) error {
	var payload struct {
		BloggID uint64 `json:"blogg_id"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
		return err
	}

	recipients, err := r.userRepo.NotifyRecipients()
	if err != nil {
		return err
	}

	postURL := fmt.Sprintf("%s/blogg/%d", r.baseURL, payload.BloggID)
	body := pkg.NewPostHTML(payload.Title, postURL)
	for _, to := range recipients {
		if err := pkg.SendEmail(r.smtp, to, "Nytt inlägg på SarasBlogg", body); err != nil {
			pkg.Log.Warn("new post mail failed",
				zap.String("to", to),
				zap.Uint64("blogg_id", payload.BloggID),
				zap.Error(err))
		}
	}
	return nil
}
