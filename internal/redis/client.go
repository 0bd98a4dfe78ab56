package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("session not found")

type Client struct {
	rdb *redis.Client
}

// SessionData is the admin session record kept server-side; the client
// only ever holds the opaque session id.
type SessionData struct {
	AdminID   uint      `json:"admin_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Admin session management
func (c *Client) SetSession(sessionID string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "admin_session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetSession(sessionID string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "admin_session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "admin_session:"+sessionID).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
