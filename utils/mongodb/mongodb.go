package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config parameters for MongoDB connection
type Config struct {
	URI            string        `env:"MONGO_URI"`
	Host           string        `env:"MONGO_HOST" envDefault:"localhost" validate:"required_without=URI"`
	Port           int           `env:"MONGO_PORT" envDefault:"27017" validate:"min=1,max=65535"`
	User           string        `env:"MONGO_USER"`
	Password       string        `env:"MONGO_PASSWORD"`
	DBName         string        `env:"MONGO_DBNAME" envDefault:"reviewsdb" validate:"required"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// ConnectionURI returns the connection string. An explicit URI wins over host/port.
func (c Config) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	if c.User != "" && c.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.User, c.Password, c.Host, c.Port)
	}
	return fmt.Sprintf("mongodb://%s:%d", c.Host, c.Port)
}

// NewMongoDBConnection connects to MongoDB and pings the primary so an
// unreachable server fails here instead of on the first write.
func NewMongoDBConnection(ctx context.Context, cfg Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.ConnectionURI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("[MONGO] Connected, database %q", cfg.DBName)
	return client, nil
}
