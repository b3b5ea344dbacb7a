package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/logdash/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/logdash/internal/common"
	"github.com/dmitrijs2005/logdash/internal/dbx"
)

// TokenStore persists the credential token and the email it was issued to.
// Load returns empty strings when nothing is stored. Discard clears only
// while token is still the stored one, so a newer login survives it.
type TokenStore interface {
	Load(ctx context.Context) (token, email string, err error)
	Save(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
	Discard(ctx context.Context, token string) error
}

// MetadataStore keeps the token in the local metadata table.
type MetadataStore struct {
	db *sql.DB
}

func NewMetadataStore(db *sql.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

func (s *MetadataStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *MetadataStore) Load(ctx context.Context) (string, string, error) {
	r := s.repo(s.db)

	token, err := r.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", "", err
	}
	email, err := r.Get(ctx, common.EmailMetadataKey)
	if err != nil {
		return "", "", err
	}
	return string(token), string(email), nil
}

// Save writes token and email in one transaction.
func (s *MetadataStore) Save(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, common.TokenMetadataKey, []byte(token)); err != nil {
			return err
		}
		if email == "" {
			return r.Delete(ctx, common.EmailMetadataKey)
		}
		return r.Set(ctx, common.EmailMetadataKey, []byte(email))
	})
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, common.TokenMetadataKey, common.EmailMetadataKey)
}

func (s *MetadataStore) Discard(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		current, err := r.Get(ctx, common.TokenMetadataKey)
		if err != nil {
			return err
		}
		if string(current) != token {
			return nil
		}
		return r.Delete(ctx, common.TokenMetadataKey, common.EmailMetadataKey)
	})
}
