package prefs

import (
	"context"
	"log"
	"sync"

	"github.com/matst80/slask-photos/pkg/common/jsoncompat"
	"github.com/matst80/slask-photos/pkg/types"
	"github.com/redis/go-redis/v9"
)

const prefsKey = "defaultFilters"
const prefsChannel = "prefsChange"

// RedisPrefs keeps the persisted default filter state (the seed for
// every new session, e.g. curatedStatus=pending) in redis and follows
// updates over pub/sub so a running browser picks them up live.
type RedisPrefs struct {
	mu      sync.RWMutex
	client  *redis.Client
	ctx     context.Context
	current *types.FilterState
}

func NewRedisPrefs(addr, password string, db int) *RedisPrefs {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	instance := &RedisPrefs{
		client: rdb,
		ctx:    ctx,
	}
	instance.reload()

	pubsub := rdb.Subscribe(ctx, prefsChannel)
	go func(ch <-chan *redis.Message) {
		for msg := range ch {
			log.Printf("default filters changed (%s)", msg.Channel)
			instance.reload()
		}
	}(pubsub.Channel())

	return instance
}

func (p *RedisPrefs) reload() {
	data, err := p.client.Get(p.ctx, prefsKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("failed to load default filters: %v", err)
		}
		return
	}
	filters := types.NewFilterState()
	if err = jsoncompat.Unmarshal([]byte(data), filters); err != nil {
		log.Printf("failed to parse default filters: %v", err)
		return
	}
	p.mu.Lock()
	p.current = filters
	p.mu.Unlock()
}

// DefaultFilters returns a copy of the persisted defaults, nil when
// nothing is stored.
func (p *RedisPrefs) DefaultFilters() *types.FilterState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return nil
	}
	return p.current.Clone()
}

// SetDefaultFilters stores new defaults and notifies every listener.
func (p *RedisPrefs) SetDefaultFilters(filters *types.FilterState) error {
	data, err := jsoncompat.Marshal(filters)
	if err != nil {
		return err
	}
	if err = p.client.Set(p.ctx, prefsKey, data, 0).Err(); err != nil {
		return err
	}
	p.mu.Lock()
	p.current = filters.Clone()
	p.mu.Unlock()
	return p.client.Publish(p.ctx, prefsChannel, prefsKey).Err()
}

func (p *RedisPrefs) Close() {
	p.client.Close()
}
