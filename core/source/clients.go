package source

import (
	"fmt"
	"sync"

	"csvdiff/core/database"
	"csvdiff/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Clients lazily connects to object storage and the database, so a run that
// only touches local files never dials either.
type Clients struct {
	storageCfg storage.Config
	dbCfg      database.Config
	log        *zap.Logger

	newStorage func(storage.Config) (storage.Client, error)
	connect    func(database.Config) (*gorm.DB, error)

	mu      sync.Mutex
	storage storage.Client
	db      *gorm.DB
}

// Option configures Clients.
type Option func(*Clients)

// WithStorage uses an existing storage client.
func WithStorage(c storage.Client) Option {
	return func(cl *Clients) { cl.storage = c }
}

// WithDB uses an existing database handle.
func WithDB(db *gorm.DB) Option {
	return func(cl *Clients) { cl.db = db }
}

// NewClients creates a client set for the given backend configuration.
func NewClients(storageCfg storage.Config, dbCfg database.Config, log *zap.Logger, opts ...Option) *Clients {
	c := &Clients{
		storageCfg: storageCfg,
		dbCfg:      dbCfg,
		log:        log,
		newStorage: storage.NewClient,
		connect:    database.Connect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bucket is the default bucket for s3: locators.
func (c *Clients) Bucket() string {
	return c.storageCfg.Bucket
}

// Storage returns the storage client, creating it on first use.
func (c *Clients) Storage() (storage.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.storage == nil {
		client, err := c.newStorage(c.storageCfg)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		c.log.Debug("Connected to object storage", zap.String("endpoint", c.storageCfg.Endpoint))
		c.storage = client
	}
	return c.storage, nil
}

// DB returns the database handle, connecting on first use.
func (c *Clients) DB() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		db, err := c.connect(c.dbCfg)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		c.log.Debug("Connected to database", zap.String("driver", c.dbCfg.Driver), zap.String("host", c.dbCfg.Host))
		c.db = db
	}
	return c.db, nil
}
