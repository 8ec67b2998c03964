package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

func TestProvider_UnexpectedMatchIsInternal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewProvider(nil, NewNotifier(logger), domain.DefaultContract, logger)
	p.resolve = func(string) domain.Match { return domain.Match{Kind: domain.MatchKind(42)} }

	ctx := context.Background()
	uri := domain.DefaultContract.CollectionURI()

	_, err := p.Query(ctx, uri, nil, "", nil, "")
	assert.ErrorIs(t, err, domain.ErrInternal)

	_, err = p.Insert(ctx, uri, domain.Payload{})
	assert.ErrorIs(t, err, domain.ErrInternal)

	_, err = p.Update(ctx, uri, domain.Payload{}, "", nil)
	assert.ErrorIs(t, err, domain.ErrInternal)

	_, err = p.Delete(ctx, uri, "", nil)
	assert.ErrorIs(t, err, domain.ErrInternal)

	_, err = p.TypeOf(uri)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.ErrorContains(t, err, "unexpected uri match 42")
}
