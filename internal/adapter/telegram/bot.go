package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/dompet/dompet/internal/infrastructure/metrics"
)

// BotAPI is the part of the Telegram client the listener uses.
// *tgbotapi.BotAPI satisfies it.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

// UpdateDeduplicator remembers handled update ids.
type UpdateDeduplicator interface {
	MarkSeen(ctx context.Context, updateID int) (bool, error)
}

// Config for Bot.
type Config struct {
	API         BotAPI
	Handler     *MessageHandler
	Dedup       UpdateDeduplicator // optional
	Logger      zerolog.Logger
	Metrics     *metrics.Metrics // optional
	PollTimeout int              // long-poll timeout in seconds
}

// Bot is the long-poll listener. It is built once at startup and
// owns no global state.
type Bot struct {
	api         BotAPI
	handler     *MessageHandler
	dedup       UpdateDeduplicator
	logger      zerolog.Logger
	metrics     *metrics.Metrics
	pollTimeout int
}

// NewBot creates a new Bot.
func NewBot(cfg Config) *Bot {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 60
	}

	return &Bot{
		api:         cfg.API,
		handler:     cfg.Handler,
		dedup:       cfg.Dedup,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		pollTimeout: cfg.PollTimeout,
	}
}

// Run receives updates until ctx is cancelled or the update channel closes.
// Messages are handled one at a time; a failing message never stops the loop.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.logger.Info().Int("poll_timeout", b.pollTimeout).Msg("telegram listener started")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("telegram listener stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				b.logger.Warn().Msg("telegram update channel closed")
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	log := b.logger.With().
		Str("trace_id", ulid.Make().String()).
		Int("update_id", update.UpdateID).
		Int64("chat_id", msg.Chat.ID).
		Logger()

	if b.dedup != nil {
		seen, err := b.dedup.MarkSeen(ctx, update.UpdateID)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("update de-duplication unavailable, handling anyway")
		case seen:
			log.Debug().Msg("skipping duplicate update")
			if b.metrics != nil {
				b.metrics.BotMessages.WithLabelValues(metrics.OutcomeDuplicate).Inc()
			}
			return
		}
	}

	reply := b.handler.Handle(log.WithContext(ctx), msg.Chat.ID, msg.Text)

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.Error().Err(err).Msg("failed to send reply")
		if b.metrics != nil {
			b.metrics.BotSendFails.Inc()
		}
	}
}
