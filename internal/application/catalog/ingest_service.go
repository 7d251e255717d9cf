package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/catalog"
)

// Locker serializes work per key. Acquire blocks until the key is free or the
// context is done; the returned release must always be called.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// IngestService handles supplier feed uploads. Uploads for the same
// (owner, shop) pair are serialized; the catalog swap itself is one
// transaction in the store.
type IngestService struct {
	store  catalog.IngestionStore
	locks  Locker
	logger *zap.Logger
}

// NewIngestService creates a new ingestion service
func NewIngestService(store catalog.IngestionStore, locks Locker, logger *zap.Logger) *IngestService {
	return &IngestService{
		store:  store,
		locks:  locks,
		logger: logger,
	}
}

// Ingest validates a feed document and replaces the target shop's catalog
// with its contents. Validation happens before the lock is taken, so a
// malformed feed never blocks concurrent uploads.
func (s *IngestService) Ingest(ctx context.Context, ownerUserID uuid.UUID, payload []byte) (*IngestResult, error) {
	feed, err := catalog.ParseFeed(payload)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, ownerUserID.String()+"/"+feed.Shop)
	if err != nil {
		return nil, err
	}
	defer release()

	created, err := s.store.ReplaceShopCatalog(ctx, ownerUserID, feed)
	if err != nil {
		s.logger.Error("Feed ingestion failed",
			zap.String("owner_id", ownerUserID.String()),
			zap.String("shop", feed.Shop),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Feed ingested",
		zap.String("owner_id", ownerUserID.String()),
		zap.String("shop", feed.Shop),
		zap.Int("listings", created))

	return &IngestResult{Shop: feed.Shop, ListingsCreated: created}, nil
}
