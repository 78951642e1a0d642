package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/artmovehq/artmove-backend/pkg/logger"
)

type fakeQuoteExpirer struct {
	batchSize int
	expired   int
	err       error
	called    int
}

func (f *fakeQuoteExpirer) ExpireQuotes(ctx context.Context, batchSize int) (int, error) {
	f.called++
	f.batchSize = batchSize
	if f.err != nil {
		return 0, f.err
	}
	return f.expired, nil
}

func TestQuoteExpiryJobPassesBatchSize(t *testing.T) {
	expirer := &fakeQuoteExpirer{expired: 3}
	job, err := NewQuoteExpiryJob(QuoteExpiryJobParams{
		Logger:    logger.New(logger.Options{ServiceName: "test"}),
		Quotes:    expirer,
		BatchSize: 25,
	})
	if err != nil {
		t.Fatalf("NewQuoteExpiryJob: %v", err)
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if expirer.called != 1 {
		t.Fatalf("expected one sweep, got %d", expirer.called)
	}
	if expirer.batchSize != 25 {
		t.Fatalf("expected batch size 25, got %d", expirer.batchSize)
	}
}

func TestQuoteExpiryJobDefaultsBatchSize(t *testing.T) {
	expirer := &fakeQuoteExpirer{}
	job, err := NewQuoteExpiryJob(QuoteExpiryJobParams{
		Logger: logger.New(logger.Options{ServiceName: "test"}),
		Quotes: expirer,
	})
	if err != nil {
		t.Fatalf("NewQuoteExpiryJob: %v", err)
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if expirer.batchSize != defaultExpiryBatchSize {
		t.Fatalf("expected batch size %d, got %d", defaultExpiryBatchSize, expirer.batchSize)
	}
}

func TestQuoteExpiryJobPropagatesError(t *testing.T) {
	job, err := NewQuoteExpiryJob(QuoteExpiryJobParams{
		Logger: logger.New(logger.Options{ServiceName: "test"}),
		Quotes: &fakeQuoteExpirer{err: errors.New("boom")},
	})
	if err != nil {
		t.Fatalf("NewQuoteExpiryJob: %v", err)
	}

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
