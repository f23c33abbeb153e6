package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
)

const (
	// DraftKeyPrefix is the Redis key prefix for form drafts
	DraftKeyPrefix = "survey:draft:"
	// DefaultDraftTTL applies when no TTL is configured
	DefaultDraftTTL = 24 * time.Hour
)

// draftSnapshot is the JSON form of a draft in Redis
type draftSnapshot struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Role           string    `json:"role"`
	Location       string    `json:"location"`
	SubRegion      int       `json:"sub_region"`
	Slots          []string  `json:"slots"`
	ConfirmedUntil time.Time `json:"confirmed_until"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RedisDraftStore keeps form drafts in Redis. Every save refreshes the TTL,
// so a draft expires after a period of inactivity.
type RedisDraftStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisDraftStore creates a draft store. A zero ttl uses DefaultDraftTTL.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &RedisDraftStore{
		client: client,
		prefix: DraftKeyPrefix,
		ttl:    ttl,
	}
}

// Save writes the draft snapshot
func (s *RedisDraftStore) Save(ctx context.Context, draft *survey.Draft) error {
	if draft == nil {
		return errors.New("draft cannot be nil")
	}

	sel := draft.Selection()
	data, err := json.Marshal(draftSnapshot{
		ID:             draft.ID(),
		Name:           draft.Name(),
		Mobile:         draft.Mobile(),
		Role:           draft.Role(),
		Location:       sel.Location(),
		SubRegion:      sel.SubRegion(),
		Slots:          draft.Slots(),
		ConfirmedUntil: draft.ConfirmedUntil(),
		UpdatedAt:      draft.UpdatedAt(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(draft.ID()), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store draft in Redis: %w", err)
	}
	return nil
}

// Get loads a draft. Missing or expired drafts return survey.ErrDraftNotFound.
func (s *RedisDraftStore) Get(ctx context.Context, id string) (*survey.Draft, error) {
	if id == "" {
		return nil, survey.ErrDraftNotFound
	}

	data, err := s.client.Get(ctx, s.buildKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, survey.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to retrieve draft from Redis: %w", err)
	}

	var snap draftSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return survey.ReconstructDraft(
		snap.ID, snap.Name, snap.Mobile, snap.Role,
		location.RestoreSelection(snap.Location, snap.SubRegion),
		snap.Slots,
		snap.ConfirmedUntil, snap.UpdatedAt,
	)
}

func (s *RedisDraftStore) buildKey(id string) string {
	return s.prefix + id
}
