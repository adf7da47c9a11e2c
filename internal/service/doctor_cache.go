package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"medibook/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const doctorSearchKeyPrefix = "doctors:search:"

// DoctorDirectoryCache caches doctor directory search results.
// Cache failures are soft: callers fall through to the database.
type DoctorDirectoryCache interface {
	GetSearch(ctx context.Context, specialty, search string) ([]dto.UserResponse, bool)
	SetSearch(ctx context.Context, specialty, search string, doctors []dto.UserResponse)
	Invalidate(ctx context.Context)
}

type redisDoctorCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisDoctorCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) DoctorDirectoryCache {
	return &redisDoctorCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func searchKey(specialty, search string) string {
	return fmt.Sprintf("%s%s:%s", doctorSearchKeyPrefix, strings.ToLower(specialty), strings.ToLower(search))
}

func (c *redisDoctorCache) GetSearch(ctx context.Context, specialty, search string) ([]dto.UserResponse, bool) {
	payload, err := c.client.Get(ctx, searchKey(specialty, search)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read doctor search cache: %+v", err)
		}
		return nil, false
	}

	var doctors []dto.UserResponse
	if err := json.Unmarshal(payload, &doctors); err != nil {
		c.log.Warnf("Failed to decode doctor search cache entry: %+v", err)
		return nil, false
	}

	return doctors, true
}

func (c *redisDoctorCache) SetSearch(ctx context.Context, specialty, search string, doctors []dto.UserResponse) {
	payload, err := json.Marshal(doctors)
	if err != nil {
		c.log.Warnf("Failed to encode doctor search cache entry: %+v", err)
		return
	}

	if err := c.client.Set(ctx, searchKey(specialty, search), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write doctor search cache: %+v", err)
	}
}

// Invalidate drops every cached search result. Called when a new doctor
// registers so the directory reflects them immediately.
func (c *redisDoctorCache) Invalidate(ctx context.Context) {
	keys, err := c.client.Keys(ctx, doctorSearchKeyPrefix+"*").Result()
	if err != nil {
		c.log.Warnf("Failed to list doctor search cache keys: %+v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate doctor search cache: %+v", err)
	}
}
