package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"ludo/game"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrBadStatus      = errors.New("random source returned non-success status")
	ErrMalformedRoll  = errors.New("random source returned a non-integer body")
	ErrRollOutOfRange = errors.New("random source returned a value outside the die range")
)

// maxBody is the largest accepted response body; a die value is a few bytes.
const maxBody = 64

var tracer = otel.Tracer("ludo/communication/client")

// HTTPRandomSource fetches one die value per call from a plain-text integer
// endpoint such as random.org. It makes a single attempt per call.
type HTTPRandomSource struct {
	url       string
	userAgent string
	client    *http.Client
}

// NewHTTPRandomSource initializes and returns a new HTTPRandomSource.
// A zero timeout leaves the request bounded only by the caller's context.
func NewHTTPRandomSource(url, userAgent string, timeout time.Duration) *HTTPRandomSource {
	return &HTTPRandomSource{
		url:       url,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Roll performs the GET and parses the trimmed body as a base-10 integer.
func (s *HTTPRandomSource) Roll(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "random.Roll", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	value, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn().Err(err).Str("url", s.url).Msg("random number fetch failed")
		return 0, err
	}

	span.SetAttributes(attribute.Int("die.value", value))
	log.Debug().Int("value", value).Msg("random number fetched")
	return value, nil
}

func (s *HTTPRandomSource) fetch(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch random number: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return 0, fmt.Errorf("read random number: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	if len(body) > maxBody {
		return 0, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedRoll, maxBody)
	}

	text := strings.TrimSpace(string(body))
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedRoll, text)
	}
	if value < game.DieMin || value > game.DieMax {
		return 0, fmt.Errorf("%w: %d", ErrRollOutOfRange, value)
	}
	return value, nil
}
