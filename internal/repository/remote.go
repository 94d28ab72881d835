// Package repository implements read-through cache repositories over the
// catalog REST boundary. Reads serve from an in-memory cache populated by
// one full-collection fetch; mutations apply to the cache synchronously
// and push the remote write onto a background worker pool.
package repository

import (
	"context"
	"fmt"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
)

// RemoteStore is the REST persistence boundary for one catalog.
type RemoteStore[T any] struct {
	baseURL string
	catalog string
}

func NewRemoteStore[T any](baseURL, catalog string) *RemoteStore[T] {
	return &RemoteStore[T]{baseURL: baseURL, catalog: catalog}
}

func (s *RemoteStore[T]) url() string {
	return fmt.Sprintf("%s/api/%s", s.baseURL, s.catalog)
}

type mutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *RemoteStore[T]) checkMutation(code int, rsp mutationResponse, op string) error {
	if code >= 300 || !rsp.Success {
		msg := rsp.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", code)
		}
		return errors.Errorf("%s %s: %s", op, s.catalog, msg)
	}
	return nil
}

// FetchAll retrieves the full collection. An empty store yields an empty
// slice, not an error.
func (s *RemoteStore[T]) FetchAll(ctx context.Context) ([]T, error) {
	items := []T{}
	code := 0
	err := gout.GET(s.url()).WithContext(ctx).BindJSON(&items).Code(&code).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", s.catalog)
	}
	if code >= 300 {
		return nil, errors.Errorf("fetch %s: status %d", s.catalog, code)
	}
	return items, nil
}

func (s *RemoteStore[T]) Create(ctx context.Context, record T) error {
	var rsp mutationResponse
	code := 0
	err := gout.POST(s.url()).WithContext(ctx).SetJSON(record).BindJSON(&rsp).Code(&code).Do()
	if err != nil {
		return errors.Wrapf(err, "create %s", s.catalog)
	}
	return s.checkMutation(code, rsp, "create")
}

func (s *RemoteStore[T]) Update(ctx context.Context, record T) error {
	var rsp mutationResponse
	code := 0
	err := gout.PUT(s.url()).WithContext(ctx).SetJSON(record).BindJSON(&rsp).Code(&code).Do()
	if err != nil {
		return errors.Wrapf(err, "update %s", s.catalog)
	}
	return s.checkMutation(code, rsp, "update")
}

func (s *RemoteStore[T]) Delete(ctx context.Context, id string) error {
	var rsp mutationResponse
	code := 0
	err := gout.DELETE(s.url()).WithContext(ctx).SetQuery(gout.H{"id": id}).BindJSON(&rsp).Code(&code).Do()
	if err != nil {
		return errors.Wrapf(err, "delete %s", s.catalog)
	}
	return s.checkMutation(code, rsp, "delete")
}

// Clear removes every record in the catalog.
func (s *RemoteStore[T]) Clear(ctx context.Context) error {
	var rsp mutationResponse
	code := 0
	err := gout.DELETE(s.url()).WithContext(ctx).BindJSON(&rsp).Code(&code).Do()
	if err != nil {
		return errors.Wrapf(err, "clear %s", s.catalog)
	}
	return s.checkMutation(code, rsp, "clear")
}
