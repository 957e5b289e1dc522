// Package strava reads athlete, gear and activity records from the Strava
// REST API through the go-openapi runtime client.
package strava

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

const (
	DefaultBaseURL = "https://www.strava.com/api/v3"

	// PageSize is the number of activities requested per page.
	PageSize = 100
	// MaxPages caps an unbounded ActivitiesSince.
	MaxPages = 200
)

type Client struct {
	transport *httptransport.Runtime
	schemes   []string
	formats   strfmt.Registry
	logger    ports.LoggerPort
}

// NewClient builds a client for baseURL. Timeouts come from httpClient.
func NewClient(baseURL string, httpClient *http.Client, logger ports.LoggerPort) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse strava base url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse strava base url: missing host in %q", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	schemes := []string{u.Scheme}
	rt := httptransport.NewWithClient(u.Host, u.Path, schemes, httpClient)
	// error bodies are not always served as JSON
	rt.Consumers["*/*"] = runtime.JSONConsumer()

	return &Client{
		transport: rt,
		schemes:   schemes,
		formats:   strfmt.Default,
		logger:    logger,
	}, nil
}

// ForToken returns a session that authenticates every call with accessToken.
func (c *Client) ForToken(accessToken string) ports.ActivitySource {
	return &Session{
		client: c,
		auth:   httptransport.BearerToken(accessToken),
	}
}

// Session is a Client bound to one user's bearer credential.
type Session struct {
	client *Client
	auth   runtime.ClientAuthInfoWriter
}

func (s *Session) GetAthlete(ctx context.Context) (*domain.Athlete, error) {
	var out DetailedAthlete
	if err := s.submit(ctx, "getLoggedInAthlete", "/athlete", noParams, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (s *Session) GetGear(ctx context.Context, gearID string) (*domain.Gear, error) {
	params := runtime.ClientRequestWriterFunc(func(req runtime.ClientRequest, _ strfmt.Registry) error {
		return req.SetPathParam("id", gearID)
	})

	var out DetailedGear
	if err := s.submit(ctx, "getGearById", "/gear/{id}", params, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (s *Session) GetActivities(ctx context.Context, q domain.ActivityQuery) ([]domain.ExternalActivity, error) {
	params := runtime.ClientRequestWriterFunc(func(req runtime.ClientRequest, _ strfmt.Registry) error {
		if q.After != nil && !q.After.IsZero() {
			if err := req.SetQueryParam("after", strconv.FormatInt(q.After.Unix(), 10)); err != nil {
				return err
			}
		}
		if q.Before != nil && !q.Before.IsZero() {
			if err := req.SetQueryParam("before", strconv.FormatInt(q.Before.Unix(), 10)); err != nil {
				return err
			}
		}
		if q.Page > 0 {
			if err := req.SetQueryParam("page", strconv.Itoa(q.Page)); err != nil {
				return err
			}
		}
		if q.PerPage > 0 {
			if err := req.SetQueryParam("per_page", strconv.Itoa(q.PerPage)); err != nil {
				return err
			}
		}
		return nil
	})

	var out activityPage
	if err := s.submit(ctx, "getLoggedInAthleteActivities", "/athlete/activities", params, &out); err != nil {
		return nil, err
	}

	activities := make([]domain.ExternalActivity, 0, len(out))
	for _, a := range out {
		if a == nil {
			continue
		}
		activities = append(activities, a.toDomain())
	}
	return activities, nil
}

// ActivitiesSince pages through the activities started after since. The
// sequence stops after a short page, after maxPages pages, or after yielding
// the first error. It can be ranged over once; later ranges yield nothing.
func (s *Session) ActivitiesSince(ctx context.Context, since time.Time, maxPages int) iter.Seq2[[]domain.ExternalActivity, error] {
	if maxPages <= 0 {
		maxPages = MaxPages
	}

	var used atomic.Bool
	return func(yield func([]domain.ExternalActivity, error) bool) {
		if used.Swap(true) {
			return
		}

		for page := 1; page <= maxPages; page++ {
			activities, err := s.GetActivities(ctx, domain.ActivityQuery{
				After:   &since,
				Page:    page,
				PerPage: PageSize,
			})
			if err != nil {
				yield(nil, err)
				return
			}
			if len(activities) == 0 {
				return
			}
			if !yield(activities, nil) {
				return
			}
			if len(activities) < PageSize {
				return
			}
		}

		s.client.logger.Warn("Activity paging stopped at page limit", map[string]interface{}{
			"max_pages": maxPages,
		})
	}
}

type validatable interface {
	Validate(strfmt.Registry) error
}

type activityPage []*SummaryActivity

func (p activityPage) Validate(formats strfmt.Registry) error {
	for i, a := range p {
		if a == nil {
			continue
		}
		if err := a.Validate(formats); err != nil {
			return fmt.Errorf("activity %d: %w", i, err)
		}
	}
	return nil
}

var noParams = runtime.ClientRequestWriterFunc(func(runtime.ClientRequest, strfmt.Registry) error {
	return nil
})

func (s *Session) submit(ctx context.Context, op, path string, params runtime.ClientRequestWriter, out validatable) error {
	start := time.Now()

	_, err := s.client.transport.Submit(&runtime.ClientOperation{
		ID:                 op,
		Method:             http.MethodGet,
		PathPattern:        path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            s.client.schemes,
		Params:             params,
		Reader:             s.reader(op, out),
		AuthInfo:           s.auth,
		Context:            ctx,
	})
	if err != nil {
		err = transportError(op, err)
		s.client.logger.Warn("Strava request failed", map[string]interface{}{
			"operation": op,
			"error":     err.Error(),
		})
		return err
	}

	s.client.logger.Debug("Strava request completed", map[string]interface{}{
		"operation":   op,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func (s *Session) reader(op string, out validatable) runtime.ClientResponseReader {
	return runtime.ClientResponseReaderFunc(func(resp runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
		if code := resp.Code(); code < 200 || code > 299 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body(), 1024))
			msg := string(body)
			if msg == "" {
				msg = resp.Message()
			}
			return nil, &RequestError{
				StatusCode: code,
				Message:    msg,
				Err:        classifyStatus(code),
			}
		}

		if err := consumer.Consume(resp.Body(), out); err != nil {
			return nil, &ValidationError{Operation: op, Err: err}
		}
		if err := out.Validate(s.client.formats); err != nil {
			return nil, &ValidationError{Operation: op, Err: err}
		}
		return out, nil
	})
}
