package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	ConnectionURL  string        `env:"PROVEO_REDIS_URL" envDefault:"redis://localhost:6379/0"` // Format: "redis://:password@localhost:6379/0"
	KeyPrefix      string        `env:"PROVEO_REDIS_KEY_PREFIX" envDefault:"proveo:client:"`
	Channel        string        `env:"PROVEO_REDIS_CHANNEL" envDefault:"proveo:client:changes"`
	RetryAttempts  int           `env:"PROVEO_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"PROVEO_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"PROVEO_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// changeEnvelope is the wire form published on the change channel. The
// origin field carries the writing instance's ID so subscribers can
// drop their own writes.
type changeEnvelope struct {
	Origin  string `json:"origin"`
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// Redis implements Store on a shared Redis server. Every write is
// published on a pub/sub channel tagged with the writer's instance ID;
// the subscription loop discards self-originated messages, so only
// other instances' writes reach External. That gives every instance
// the same view a browser tab gets from the native storage event:
// notified of everyone's writes but its own.
type Redis struct {
	client     *redis.Client
	pubsub     *redis.PubSub
	instanceID string
	prefix     string
	channel    string
	external   chan Change
	log        *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewRedis connects to Redis using cfg, retrying per the configured
// budget, and starts the change subscription loop. A nil log disables
// logging.
func NewRedis(ctx context.Context, cfg RedisConfig, log *slog.Logger) (*Redis, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &Redis{
		client:     client,
		instanceID: uuid.New().String(),
		prefix:     cfg.KeyPrefix,
		channel:    cfg.Channel,
		external:   make(chan Change, externalBuffer),
		log:        log,
		done:       make(chan struct{}),
	}

	s.pubsub = client.Subscribe(ctx, cfg.Channel)
	// Wait for the subscription to be established so no external write
	// published after NewRedis returns can be missed.
	if _, err := s.pubsub.Receive(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	s.wg.Add(1)
	go s.receiveLoop()

	return s, nil
}

func connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for range attempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

func (s *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return err
	}
	return s.publish(ctx, changeEnvelope{Origin: s.instanceID, Key: key, Value: value})
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return err
	}
	return s.publish(ctx, changeEnvelope{Origin: s.instanceID, Key: key, Deleted: true})
}

func (s *Redis) External() <-chan Change {
	return s.external
}

func (s *Redis) publish(ctx context.Context, env changeEnvelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.client.Publish(ctx, s.channel, payload).Err()
}

func (s *Redis) receiveLoop() {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var env changeEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				s.log.Warn("statestore: dropping malformed change message", "error", err)
				continue
			}
			if env.Origin == s.instanceID {
				continue
			}

			select {
			case s.external <- Change{Key: env.Key, Value: env.Value, Deleted: env.Deleted}:
			default:
				s.log.Warn("statestore: external change dropped, consumer too slow", "key", env.Key)
			}
		}
	}
}

// Close stops the subscription loop and closes the connection.
func (s *Redis) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
		s.wg.Wait()
		close(s.external)
		err = errors.Join(err, s.client.Close())
	})
	return err
}
