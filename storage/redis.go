package storage

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"eventhub-backend/models"

	"github.com/go-redis/redis/v8"
)

const servicesCacheKey = "catalog:services"

// InitializeRedis connects to REDIS_URL. Returns nil when unset so the
// catalog simply runs uncached in development.
func InitializeRedis() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, catalog cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})

	log.Println("Redis initialized with address:", redisURL)
	return client
}

// CatalogCache keeps the full service listing in Redis. Mutations
// through the catalog manager invalidate it; a miss or any Redis error
// just falls through to the database.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client, ttl: 5 * time.Minute}
}

func (c *CatalogCache) GetServices() ([]models.Service, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(context.Background(), servicesCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var services []models.Service
	if err := json.Unmarshal([]byte(payload), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *CatalogCache) SetServices(services []models.Service) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := c.client.Set(context.Background(), servicesCacheKey, payload, c.ttl).Err(); err != nil {
		log.Printf("catalog cache set failed: %v", err)
	}
}

func (c *CatalogCache) Invalidate() {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(context.Background(), servicesCacheKey).Err(); err != nil {
		log.Printf("catalog cache invalidate failed: %v", err)
	}
}
