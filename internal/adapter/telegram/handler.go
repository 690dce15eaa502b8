package telegram

import (
	"context"
	"errors"
	"runtime/debug"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/dompet/dompet/internal/command"
	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/infrastructure/metrics"
	"github.com/dompet/dompet/internal/usecase"
)

// RecordService defines the behavior needed by MessageHandler.
type RecordService interface {
	Record(ctx context.Context, input usecase.RecordInput) (*usecase.RecordResult, error)
}

// MessageHandler turns one chat message into at most one stored record and a reply.
// It knows nothing about the chat transport.
type MessageHandler struct {
	records RecordService
	metrics *metrics.Metrics
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(records RecordService, metrics *metrics.Metrics) *MessageHandler {
	return &MessageHandler{
		records: records,
		metrics: metrics,
	}
}

// Handle processes text sent from chatID and returns the reply.
// It never panics; failures become the retry prompt.
func (h *MessageHandler) Handle(ctx context.Context, chatID int64, text string) (reply string) {
	log := zerolog.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("panic while handling message")
			h.count(metrics.OutcomeFailed)
			reply = MsgFailure
		}
	}()

	cmd, err := command.Parse(text)
	if err != nil {
		var perr *command.ParseError
		if errors.As(err, &perr) {
			log.Debug().Err(err).Msg("rejected malformed amount")
			h.count(metrics.OutcomeFormatError)
			return formatErrorMessage(perr.Kind)
		}

		h.count(metrics.OutcomeUnrecognized)
		return MsgUnrecognized
	}

	if cmd.Type == command.TypeStart {
		h.count(metrics.OutcomeStart)
		return MsgWelcome
	}

	result, err := h.records.Record(ctx, usecase.RecordInput{
		Kind:          cmd.Kind,
		Amount:        cmd.Amount,
		Note:          cmd.Note,
		OriginChannel: strconv.FormatInt(chatID, 10),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			h.count(metrics.OutcomeFormatError)
			return formatErrorMessage(cmd.Kind)
		}

		log.Error().Err(err).Str("kind", string(cmd.Kind)).Msg("failed to record message")
		h.count(metrics.OutcomeFailed)
		return MsgFailure
	}

	log.Info().
		Int64("record_id", result.Record.ID).
		Str("kind", string(result.Record.Kind)).
		Str("amount", result.Record.Amount.String()).
		Msg("record created")

	if cmd.Kind == domain.KindIncome {
		h.count(metrics.OutcomeIncome)
		return incomeMessage(result.Record.Amount, result.Balance)
	}

	h.count(metrics.OutcomeExpense)
	return expenseMessage(result.Record.Amount, cmd.Note, result.Balance)
}

func (h *MessageHandler) count(outcome string) {
	if h.metrics != nil {
		h.metrics.BotMessages.WithLabelValues(outcome).Inc()
	}
}
