package amphibian

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"amphibians/internal/jsonutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public catalog server.
	DefaultBaseURL = "https://android-kotlin-fun-mars-server.appspot.com"
	// DefaultEndpoint is the path of the amphibian list below the base URL.
	DefaultEndpoint = "amphibians"

	// RequestIDHeader carries the fetch id to the server.
	RequestIDHeader = "X-Request-ID"

	tracerName = "amphibians/amphibian"
)

// Repository supplies the amphibian catalog.
type Repository interface {
	// Amphibians returns every record in server order.
	Amphibians(ctx context.Context) ([]Record, error)
}

// NetworkRepository fetches the catalog over HTTP.
type NetworkRepository struct {
	client   *resty.Client
	endpoint string
	tracer   oteltrace.Tracer
}

// Ensure NetworkRepository implements Repository.
var _ Repository = (*NetworkRepository)(nil)

// Option configures a NetworkRepository.
type Option func(*NetworkRepository)

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *NetworkRepository) {
		if d > 0 {
			r.client.SetTimeout(d)
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(r *NetworkRepository) {
		r.tracer = tp.Tracer(tracerName)
	}
}

// NewNetworkRepository creates a repository reading <baseURL>/<endpoint>.
func NewNetworkRepository(baseURL, endpoint string, opts ...Option) *NetworkRepository {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	r := &NetworkRepository{
		client:   c,
		endpoint: "/" + strings.TrimLeft(endpoint, "/"),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Amphibians performs one GET and decodes the JSON array response.
// Every error is a *FetchError.
func (r *NetworkRepository) Amphibians(ctx context.Context) ([]Record, error) {
	ctx, span := r.tracer.Start(ctx, "amphibians.http_get",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("http.url", r.client.BaseURL+r.endpoint)),
	)
	defer span.End()

	req := r.client.R().SetContext(ctx)
	if id := RequestIDFromContext(ctx); id != "" {
		req.SetHeader(RequestIDHeader, id)
	}

	resp, err := req.Get(r.endpoint)
	if err != nil {
		return nil, fail(span, newFetchError(ReasonTransport, 0, err))
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fail(span, newFetchError(ReasonStatus, resp.StatusCode(), fmt.Errorf("unexpected status %s", resp.Status())))
	}

	records, err := jsonutil.UnmarshalArrayAllowEmpty[Record](resp.Body(), "decode amphibians")
	if err != nil {
		return nil, fail(span, newFetchError(ReasonDecode, 0, err))
	}
	span.SetAttributes(attribute.Int("amphibians.count", len(records)))
	return records, nil
}

func fail(span oteltrace.Span, err *FetchError) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(err.Reason))
	return err
}

type requestIDKey struct{}

// WithRequestID attaches a fetch id that NetworkRepository forwards in the
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
