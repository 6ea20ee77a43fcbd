package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"transcriptai/internal/model"
)

// TranscriptCache is a read-through cache for the summary view page. Entries
// are deleted on Update so a stale summary is never rendered.
type TranscriptCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewTranscriptCache(client *redisv9.Client, ttl time.Duration) *TranscriptCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TranscriptCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *TranscriptCache) Get(ctx context.Context, id string) (*model.Transcript, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get transcript failed: %w", err)
	}

	var transcript model.Transcript
	if err := json.Unmarshal([]byte(raw), &transcript); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached transcript failed: %w", err)
	}
	return &transcript, true, nil
}

func (c *TranscriptCache) Set(ctx context.Context, transcript *model.Transcript) error {
	payload, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("marshal transcript cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(transcript.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set transcript failed: %w", err)
	}
	return nil
}

func (c *TranscriptCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete transcript failed: %w", err)
	}
	return nil
}

func (c *TranscriptCache) key(id string) string {
	return "transcript:" + id
}
