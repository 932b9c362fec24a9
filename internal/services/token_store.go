package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"freight-admin/internal/repositories"
	apperrors "freight-admin/pkg/errors"
)

// TokenStoreInterface keeps the server-side record of issued refresh tokens.
// A refresh token is only honoured while its id is present.
type TokenStoreInterface interface {
	Save(ctx context.Context, tokenID string, userID uint64, ttl time.Duration) error
	Owner(ctx context.Context, tokenID string) (uint64, error)
	Claim(ctx context.Context, tokenID string) (uint64, error)
	Revoke(ctx context.Context, tokenID string) error
	RevokeAll(ctx context.Context, userID uint64) error
}

type TokenStore struct {
	cacheRepo repositories.CacheRepositoryInterface
}

func NewTokenStore(cacheRepo repositories.CacheRepositoryInterface) TokenStoreInterface {
	return &TokenStore{cacheRepo: cacheRepo}
}

func refreshKey(tokenID string) string {
	return "auth:refresh:" + tokenID
}

func userTokensKey(userID uint64) string {
	return fmt.Sprintf("auth:refresh:user:%d", userID)
}

func (s *TokenStore) Save(ctx context.Context, tokenID string, userID uint64, ttl time.Duration) error {
	if err := s.cacheRepo.Set(ctx, refreshKey(tokenID), strconv.FormatUint(userID, 10), ttl); err != nil {
		return err
	}
	setKey := userTokensKey(userID)
	if err := s.cacheRepo.SAdd(ctx, setKey, tokenID); err != nil {
		return err
	}
	// the index lives as long as the newest token
	_, err := s.cacheRepo.Expire(ctx, setKey, ttl)
	return err
}

// Owner returns ErrTokenRevoked when the id is unknown or expired.
func (s *TokenStore) Owner(ctx context.Context, tokenID string) (uint64, error) {
	raw, err := s.cacheRepo.Get(ctx, refreshKey(tokenID))
	return parseOwner(tokenID, raw, err)
}

// Claim removes the token and returns its owner. Only one caller can claim a
// given id; every later call gets ErrTokenRevoked.
func (s *TokenStore) Claim(ctx context.Context, tokenID string) (uint64, error) {
	raw, err := s.cacheRepo.GetDel(ctx, refreshKey(tokenID))
	userID, err := parseOwner(tokenID, raw, err)
	if err != nil {
		return 0, err
	}
	if err := s.cacheRepo.SRem(ctx, userTokensKey(userID), tokenID); err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	_, err := s.Claim(ctx, tokenID)
	return err
}

func parseOwner(tokenID, raw string, err error) (uint64, error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return 0, apperrors.ErrTokenRevoked
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("refresh token %s owner %q: %w", tokenID, raw, err)
	}
	return userID, nil
}

func (s *TokenStore) RevokeAll(ctx context.Context, userID uint64) error {
	setKey := userTokensKey(userID)
	ids, err := s.cacheRepo.SMembers(ctx, setKey)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, refreshKey(id))
	}
	keys = append(keys, setKey)
	return s.cacheRepo.Del(ctx, keys...)
}
