package ingestors

import (
	"context"
	"encoding/json"
	"io"

	"traffic-analytics/internal/aggregators"
	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/loggers"
	"traffic-analytics/internal/shared/metrics"

	"github.com/mileusna/useragent"
)

const maxEventBytes = 64 * 1024

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestEvent parses and validates one traffic event from JSON and, on
	// acceptance, folds it into the customer's hourly bucket. Rejected
	// events never reach the aggregator.
	IngestEvent(ctx context.Context, callerUserAgent string, r io.Reader) (*models.HourlyStat, error)
}

type ingestionService struct {
	eventValidator EventValidator
	aggregator     aggregators.HourlyAggregator
}

func NewIngestionService(eventValidator EventValidator, aggregator aggregators.HourlyAggregator) IngestionService {
	return &ingestionService{
		eventValidator: eventValidator,
		aggregator:     aggregator,
	}
}

func (s *ingestionService) IngestEvent(ctx context.Context, callerUserAgent string, r io.Reader) (*models.HourlyStat, error) {
	logger := loggers.Ctx(ctx)

	event, err := s.parseEvent(r)
	if err != nil {
		s.recordRejected(err)
		return nil, err
	}

	trafficEvent, err := s.eventValidator.Validate(ctx, event, callerUserAgent)
	if err != nil {
		s.recordRejected(err)
		return nil, err
	}

	hourStart := models.FloorToHour(trafficEvent.Timestamp)
	stat, err := s.aggregator.Increment(ctx, trafficEvent.CustomerID, hourStart, 1)
	if err != nil {
		s.recordRejected(err)
		return nil, err
	}

	metricEventIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventAcceptedTotal.WithLabelValues(agentFamily(callerUserAgent)).Inc()
	logger.Info().
		Int64(loggers.FieldCustomerID, trafficEvent.CustomerID).
		Str(loggers.FieldHourStart, hourStart.Format("2006-01-02T15Z")).
		Msg("event accepted")
	return stat, nil
}

func (s *ingestionService) parseEvent(r io.Reader) (*IncomingEvent, error) {
	if r == nil {
		return nil, errMalformedInput("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxEventBytes+1))
	if err != nil {
		return nil, errMalformedInput("failed to read request body", err)
	}
	if len(buf) > maxEventBytes {
		return nil, errMalformedInput("event too large: must be <= 64KB", nil)
	}
	if len(buf) == 0 {
		return nil, errMalformedInput("empty request body", nil)
	}

	var event IncomingEvent
	if err := json.Unmarshal(buf, &event); err != nil {
		return nil, errMalformedInput("invalid json", err)
	}
	return &event, nil
}

func (s *ingestionService) recordRejected(err error) {
	metricEventIngestedTotal.WithLabelValues(errorCode(err)).Inc()
}

// agentFamily normalizes a raw user agent into its browser/bot family for
// the accepted-events metric, falling back to "other" when parsing yields
// nothing (raw agents are unbounded and would blow up label cardinality).
func agentFamily(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return "other"
}
