package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/metrics"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/segmentio/kafka-go"
)

// PaywallMinter mints pay-to-unlock links at the external payment service.
type PaywallMinter interface {
	CreatePaywall(ctx context.Context, url, memo string, amount int64) (string, error)
}

// PaywallRecordReader looks up a single paywall record.
type PaywallRecordReader interface {
	GetByPublicID(ctx context.Context, publicID string) (*models.PaywallDB, error)
}

// PaywallRecordWriter persists minted paywall records.
type PaywallRecordWriter interface {
	Save(ctx context.Context, publicID, url, paywallURL string) (*models.PaywallDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaywallService mints and persists paywalls and publishes mint events.
type PaywallService struct {
	minter      PaywallMinter
	reader      PaywallRecordReader
	writer      PaywallRecordWriter
	kafkaWriter KafkaWriter
	amount      int64
}

// NewPaywallService creates a new PaywallService. amount is the price in
// satoshis applied to every minted paywall.
func NewPaywallService(
	minter PaywallMinter,
	reader PaywallRecordReader,
	writer PaywallRecordWriter,
	kafkaWriter KafkaWriter,
	amount int64,
) *PaywallService {
	return &PaywallService{
		minter:      minter,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		amount:      amount,
	}
}

// Create mints a paywall for the image and persists the resulting link.
// An image that already has a paywall returns the existing record without
// minting a second external link. A mint failure persists nothing; a
// persistence failure after a successful mint leaves an orphaned external
// link, which is logged.
func (s *PaywallService) Create(ctx context.Context, publicID, url, createdBy string) (*models.PaywallDB, error) {
	existing, err := s.reader.GetByPublicID(ctx, publicID)
	if err != nil {
		logger.Log.Errorw("failed to check existing paywall", "public_id", publicID, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("paywall already exists, returning existing record", "public_id", publicID)
		return existing, nil
	}

	memo := fmt.Sprintf("gallery_%s", publicID)
	paywallURL, err := s.minter.CreatePaywall(ctx, url, memo, s.amount)
	if err != nil {
		logger.Log.Errorw("failed to mint paywall", "public_id", publicID, "err", err)
		return nil, err
	}

	record, err := s.writer.Save(ctx, publicID, url, paywallURL)
	if err != nil {
		logger.Log.Errorw("failed to persist paywall, external link is orphaned",
			"public_id", publicID, "paywall_url", paywallURL, "err", err)
		return nil, err
	}

	metrics.PaywallsCreated.Inc()

	event := models.PaywallEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		PublicID:   publicID,
		PaywallURL: paywallURL,
		CreatedBy:  createdBy,
	}
	s.publishEvent(ctx, event)

	return record, nil
}

// publishEvent publishes a mint event to Kafka. Publishing is best effort:
// the paywall is already persisted when this runs.
func (s *PaywallService) publishEvent(ctx context.Context, event models.PaywallEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal paywall event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PublicID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish paywall event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Paywall event published to Kafka", "event_id", event.EventID, "public_id", event.PublicID)
	}
}
