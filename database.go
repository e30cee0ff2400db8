// Copyright 2025 Hirebuddy
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package scout

import (
	"io"
	"log/slog"

	"github.com/hirebuddy/scout/ingestion"
	"github.com/hirebuddy/scout/location"
	"github.com/hirebuddy/scout/outreach"
	"github.com/hirebuddy/scout/outreach/openai"
	"github.com/hirebuddy/scout/refresh"
	"github.com/hirebuddy/scout/search"
	"github.com/hirebuddy/scout/storage"
	"github.com/hirebuddy/scout/storage/badger"
)

// Database is the top level handle for a job-search database. It owns the
// storage backend and hands out repositories and the higher level components
// built on them.
type Database struct {
	backend     *badger.Backend
	jobRepo     storage.JobRepository
	historyRepo storage.HistoryRepository
	aliases     *location.Table
	provider    outreach.Provider
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	outreachConfig *outreach.Config
	aliases        *location.Table
	inMemory       bool
}

// WithOutreachConfig sets the LLM configuration used for email drafting.
func WithOutreachConfig(config *outreach.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.outreachConfig = config
	}
}

// WithAliasTable sets the location alias table shared by every component.
func WithAliasTable(table *location.Table) DatabaseOption {
	return func(o *databaseOptions) {
		o.aliases = table
	}
}

// WithInMemory opens the backend without disk persistence.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		outreachConfig: outreach.DefaultConfig(),
		aliases:        location.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create job repository on the shared backend
	jobRepo := badger.NewSharedJobRepository(backend)

	// Create search history repository
	historyRepo, err := badger.NewHistoryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create outreach provider with configured settings
	provider, err := openai.NewProvider(options.outreachConfig)
	if err != nil {
		historyRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		jobRepo:     jobRepo,
		historyRepo: historyRepo,
		aliases:     options.aliases,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close outreach provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing outreach provider", "err", err)
	}

	// Close repositories
	if err := db.historyRepo.Close(); err != nil {
		db.logger.Error("error closing history repository", "err", err)
		return err
	}
	if err := db.jobRepo.Close(); err != nil {
		db.logger.Error("error closing job repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) JobRepository() storage.JobRepository {
	return db.jobRepo
}

func (db *Database) HistoryRepository() storage.HistoryRepository {
	return db.historyRepo
}

// AliasTable returns the location alias table shared by the database's
// components.
func (db *Database) AliasTable() *location.Table {
	return db.aliases
}

// EmailWriter returns the configured outreach email writer.
func (db *Database) EmailWriter() outreach.EmailWriter {
	return db.provider.EmailWriter()
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	merged := append([]ingestion.Option{ingestion.WithAliases(db.aliases)}, opts...)
	return ingestion.NewPipeline(db.jobRepo, merged...)
}

func (db *Database) NewRanker(opts ...search.Option) (*search.Ranker, error) {
	merged := append([]search.Option{search.WithAliases(db.aliases)}, opts...)
	return search.NewRanker(merged...)
}

// NewRenormalizer builds a maintenance pass over the stored postings.
func (db *Database) NewRenormalizer(config *refresh.Config, progress io.Writer) *refresh.Renormalizer {
	return refresh.NewRenormalizer(db.jobRepo, db.aliases, config, progress)
}
