package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/internal/domain/entity"
)

// ESUserIndex mirrors public profile fields into an Elasticsearch index and
// serves the user search endpoint.
type ESUserIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewESUserIndex(es *elasticsearch.Client, index string) *ESUserIndex {
	return &ESUserIndex{es: es, index: index}
}

func (i *ESUserIndex) Index(ctx context.Context, u *entity.User) error {
	doc := map[string]any{
		"id":              u.ID,
		"email":           u.Email,
		"name":            u.Name,
		"profile_picture": u.ProfilePicture,
		"created_at":      u.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":      u.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: i.index, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return errResponse(res.Status())
	}
	return nil
}

func (i *ESUserIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := i.es.Search(
		i.es.Search.WithContext(c),
		i.es.Search.WithIndex(i.index),
		i.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

type esError string

func (e esError) Error() string { return "elasticsearch: " + string(e) }

func errResponse(status string) error { return esError(status) }

var _ application.UserIndex = (*ESUserIndex)(nil)
