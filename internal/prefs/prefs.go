package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Preferences persists the operator's display choices (selected tab, date
// range filter) in Redis, keyed by string identifiers. Values are small JSON
// documents; this is the only state the console keeps besides the token.
type Preferences struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Preferences {
	return &Preferences{rdb: rdb}
}

func (p *Preferences) key(userID, name string) string {
	return fmt.Sprintf("prefs:%s:%s", userID, name)
}

// Get decodes the stored value into dest. Returns false when the preference
// has never been set.
func (p *Preferences) Get(ctx context.Context, userID, name string, dest interface{}) (bool, error) {
	val, err := p.rdb.Get(ctx, p.key(userID, name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Preferences) Set(ctx context.Context, userID, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, p.key(userID, name), data, 0).Err()
}
