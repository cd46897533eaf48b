package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octobees/lead-finder/internal/entity"
)

type searcherStub struct {
	results map[string][]string
	fail    map[string]bool
	calls   []string
}

func (s *searcherStub) Snippets(_ context.Context, query string) ([]string, error) {
	s.calls = append(s.calls, query)
	if s.fail[query] {
		return nil, errors.New("blocked")
	}
	return s.results[query], nil
}

func TestQueries(t *testing.T) {
	assert.Equal(t, []string{
		"Acme Plumbing Austin, TX owner",
		"Acme Plumbing Austin, TX contact email",
	}, Queries(" Acme Plumbing ", "Austin, TX"))
}

func TestFinder_StopsOnceComplete(t *testing.T) {
	stub := &searcherStub{results: map[string][]string{
		"Acme Austin owner": {"President: Dana White", "dana@acme.example"},
	}}

	got := NewFinder(stub, nil).FindOwner(context.Background(), "Acme", "Austin")
	require.NotNil(t, got.OwnerName)
	require.NotNil(t, got.OwnerContact)
	assert.Equal(t, "Dana White", *got.OwnerName)
	assert.Equal(t, "dana@acme.example", *got.OwnerContact)
	assert.Equal(t, entity.EnrichmentFound, got.Status)
	assert.Len(t, stub.calls, 1)
}

func TestFinder_SkipsFailedQuery(t *testing.T) {
	stub := &searcherStub{
		fail: map[string]bool{"Acme Austin owner": true},
		results: map[string][]string{
			"Acme Austin contact email": {"CEO Sam Stone - sam@acme.example"},
		},
	}

	got := NewFinder(stub, nil).FindOwner(context.Background(), "Acme", "Austin")
	assert.Equal(t, entity.EnrichmentFound, got.Status)
	assert.Len(t, stub.calls, 2)
}

func TestFinder_NotFound(t *testing.T) {
	stub := &searcherStub{}
	got := NewFinder(stub, nil).FindOwner(context.Background(), "Acme", "Austin")
	assert.Equal(t, entity.EnrichmentNotFound, got.Status)
	assert.Nil(t, got.OwnerName)
	assert.Nil(t, got.OwnerContact)
	assert.Len(t, stub.calls, 2)
}

func TestFinder_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &searcherStub{}
	got := NewFinder(stub, nil).FindOwner(ctx, "Acme", "Austin")
	assert.Equal(t, entity.EnrichmentError, got.Status)
	assert.Empty(t, stub.calls)
}
