package cron

import (
	"context"
	"fmt"

	"github.com/artmovehq/artmove-backend/pkg/logger"
)

const defaultExpiryBatchSize = 200

type quoteExpirer interface {
	ExpireQuotes(ctx context.Context, batchSize int) (int, error)
}

// QuoteExpiryJobParams configure the auction deadline sweeper.
type QuoteExpiryJobParams struct {
	Logger    *logger.Logger
	Quotes    quoteExpirer
	BatchSize int
}

// NewQuoteExpiryJob builds the cron job that closes auctions past their
// bidding deadline.
func NewQuoteExpiryJob(params QuoteExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Quotes == nil {
		return nil, fmt.Errorf("quotes service required")
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = defaultExpiryBatchSize
	}
	return &quoteExpiryJob{
		logg:      params.Logger,
		quotes:    params.Quotes,
		batchSize: batchSize,
	}, nil
}

type quoteExpiryJob struct {
	logg      *logger.Logger
	quotes    quoteExpirer
	batchSize int
}

func (j *quoteExpiryJob) Name() string { return "quote-expiry" }

func (j *quoteExpiryJob) Run(ctx context.Context) error {
	expired, err := j.quotes.ExpireQuotes(ctx, j.batchSize)
	if err != nil {
		return fmt.Errorf("expire quotes: %w", err)
	}
	logCtx := j.logg.WithField(ctx, "expired", expired)
	j.logg.Info(logCtx, "quote expiry sweep complete")
	return nil
}
