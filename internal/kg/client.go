// Package kg provides the Google Knowledge Graph Search API client for kgr.
// It wraps the generated kgsearch service with typed results and the
// score-gated suggestion rule the rest of kgr relies on.
package kg

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	kgsearch "google.golang.org/api/kgsearch/v1"
	"google.golang.org/api/option"

	"github.com/dbmrq/kgr/internal/config"
	"github.com/dbmrq/kgr/internal/errors"
)

// Entity is a single Knowledge Graph search result.
type Entity struct {
	// ID is the canonical entity identifier (e.g. "kg:/m/0d6lp").
	ID string
	// Name is the entity's display name.
	Name string
	// Description is the short entity description, if any.
	Description string
	// Types are the schema.org types of the entity.
	Types []string
	// Score is Google's relevance score for the query. The scale is
	// unbounded and undocumented; only relative comparisons are meaningful.
	Score float64
}

// Client queries the Google Knowledge Graph Search API.
type Client struct {
	svc       *kgsearch.Service
	limit     int64
	minScore  float64
	languages []string
	types     []string
	timeout   time.Duration
}

// NewClient creates a Knowledge Graph client from the given configuration.
// The API key must be resolved (flag, environment, or config file) before
// calling; an empty key is an error.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.API.Key == "" {
		return nil, errors.MissingAPIKey()
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.API.Key)}
	if cfg.API.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.API.Endpoint))
	}

	svc, err := kgsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNetwork, "failed to create Knowledge Graph service")
	}

	return &Client{
		svc:       svc,
		limit:     cfg.API.Limit,
		minScore:  cfg.API.MinScore,
		languages: cfg.API.Languages,
		types:     cfg.API.Types,
		timeout:   cfg.API.Timeout,
	}, nil
}

// MinScore returns the configured minimum result score.
func (c *Client) MinScore() float64 {
	return c.minScore
}

// Search queries the Knowledge Graph and returns the ranked entities.
func (c *Client) Search(ctx context.Context, query string) ([]Entity, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	call := c.svc.Entities.Search().Query(query).Limit(c.limit)
	if len(c.languages) > 0 {
		call = call.Languages(c.languages...)
	}
	if len(c.types) > 0 {
		call = call.Types(c.types...)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, c.mapError(query, err)
	}

	entities := make([]Entity, 0, len(resp.ItemListElement))
	for _, elem := range resp.ItemListElement {
		if e, ok := parseElement(elem); ok {
			entities = append(entities, e)
		}
	}
	return entities, nil
}

// Suggest returns the name of the best matching entity when its score
// exceeds the configured minimum. Otherwise it returns the query unchanged,
// so callers can compare the result against the input.
func (c *Client) Suggest(ctx context.Context, query string) (string, error) {
	entities, err := c.Search(ctx, query)
	if err != nil {
		return "", err
	}
	if len(entities) == 0 {
		return query, nil
	}
	best := entities[0]
	if best.Score > c.minScore && best.Name != "" {
		return best.Name, nil
	}
	return query, nil
}

// mapError converts transport errors into kgr error types.
func (c *Client) mapError(query string, err error) error {
	if ctxErr := contextError(err); ctxErr != nil {
		return ctxErr
	}

	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests, http.StatusForbidden:
			return errors.QuotaExceeded(0).WithCause(err)
		case http.StatusBadRequest, http.StatusUnauthorized:
			return errors.InvalidAPIKey(err)
		}
		return errors.SearchFailed(query, err)
	}

	return errors.NetworkUnavailable("kgsearch.googleapis.com", err)
}

// contextError returns a timeout error when err stems from ctx expiry.
func contextError(err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.OperationTimeout("Knowledge Graph search", 0)
	case stderrors.Is(err, context.Canceled):
		return errors.New(errors.ErrAborted, "Knowledge Graph search cancelled")
	}
	return nil
}

// parseElement extracts an Entity from one itemListElement of the JSON-LD
// response. Elements are loosely typed maps; anything malformed is skipped.
func parseElement(elem interface{}) (Entity, bool) {
	m, ok := elem.(map[string]interface{})
	if !ok {
		return Entity{}, false
	}

	var e Entity
	if score, ok := m["resultScore"].(float64); ok {
		e.Score = score
	}

	result, ok := m["result"].(map[string]interface{})
	if !ok {
		return Entity{}, false
	}
	if id, ok := result["@id"].(string); ok {
		e.ID = id
	}
	if name, ok := result["name"].(string); ok {
		e.Name = name
	}
	if desc, ok := result["description"].(string); ok {
		e.Description = desc
	}
	if types, ok := result["@type"].([]interface{}); ok {
		for _, t := range types {
			if s, ok := t.(string); ok {
				e.Types = append(e.Types, s)
			}
		}
	}

	if e.Name == "" {
		return Entity{}, false
	}
	return e, true
}
