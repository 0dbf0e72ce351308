package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be handed a single, cluster or
// in-memory test client interchangeably
type Client interface {
	redis.UniversalClient
}
