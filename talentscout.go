// Copyright 2025 Poiesic Systems
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


package talentscout

import (
	"context"
	"log/slog"

	"github.com/poiesic/talentscout/ai"
	"github.com/poiesic/talentscout/ai/openai"
	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/ingest"
	"github.com/poiesic/talentscout/match"
	"github.com/poiesic/talentscout/storage"
	"github.com/poiesic/talentscout/storage/badger"
)

// Index bundles the candidate store and the AI provider behind one handle.
// It is the entry point for embedding applications; the CLI is a thin layer
// over it.
type Index struct {
	backend  *badger.Backend
	repo     storage.CandidateRepository
	provider ai.Provider
	logger   *slog.Logger
}

// IndexOption configures an Index.
type IndexOption func(*indexOptions)

type indexOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the AI service configuration used to build the default
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) IndexOption {
	return func(o *indexOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Useful for tests with mock services.
func WithProvider(provider ai.Provider) IndexOption {
	return func(o *indexOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the underlying store in memory instead of on disk.
func WithInMemory() IndexOption {
	return func(o *indexOptions) {
		o.inMemory = true
	}
}

// OpenIndex opens (or creates) a candidate index at filePath.
func OpenIndex(filePath string, opts ...IndexOption) (*Index, error) {
	options := &indexOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewCandidateRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Index{
		backend:  backend,
		repo:     repo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider and the underlying store.
func (ix *Index) Close() error {
	// Close AI provider first
	if err := ix.provider.Close(); err != nil {
		ix.logger.Error("error closing AI provider", "err", err)
	}

	if err := ix.repo.Close(); err != nil {
		ix.logger.Error("error closing candidate repository", "err", err)
		return err
	}

	if err := ix.backend.Close(); err != nil {
		ix.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CandidateRepository exposes the underlying repository.
func (ix *Index) CandidateRepository() storage.CandidateRepository {
	return ix.repo
}

// Provider exposes the AI provider.
func (ix *Index) Provider() ai.Provider {
	return ix.provider
}

// NewPipeline creates an ingestion pipeline bound to this index.
func (ix *Index) NewPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(ix.repo, ix.provider, opts...)
}

// NewMatcher creates a matcher bound to this index.
func (ix *Index) NewMatcher(opts ...match.Option) (*match.Matcher, error) {
	return match.NewMatcher(ix.repo, ix.provider, opts...)
}

// Ingest sections raw text and stores it as one candidate document.
// A convenience wrapper that builds and releases a pipeline per call;
// batch workloads should use NewPipeline directly.
func (ix *Index) Ingest(ctx context.Context, id, text string, metadata map[string]string) (*core.CandidateRecord, error) {
	pipeline, err := ix.NewPipeline()
	if err != nil {
		return nil, err
	}
	defer pipeline.Release()

	return pipeline.IngestText(ctx, id, text, metadata)
}

// Match ranks stored candidates against a job description.
// A convenience wrapper that builds and releases a matcher per call;
// query-heavy workloads should use NewMatcher directly.
func (ix *Index) Match(ctx context.Context, jobDescription string, topK int) ([]*core.MatchResult, error) {
	matcher, err := ix.NewMatcher()
	if err != nil {
		return nil, err
	}
	defer matcher.Release()

	return matcher.Match(ctx, jobDescription, topK)
}
