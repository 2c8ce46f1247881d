// Package fuzzgo provides an embedded fuzzy matcher for candidate lists.
//
// This file implements a fluent search API for querying Matcher instances.
package fuzzgo

import (
	"context"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/fuzzgo/engine"
)

// Search creates a new fluent search builder for the given needle.
//
// Example:
//
//	results, err := m.Search(needle).
//	    Workers(8).
//	    Limit(20).
//	    Execute(ctx)
func (m *Matcher) Search(needle []byte) *SearchBuilder {
	return &SearchBuilder{
		m:       m,
		needle:  needle,
		workers: m.opts.workers,
	}
}

// SearchBuilder is a fluent builder for constructing match queries.
type SearchBuilder struct {
	m       *Matcher
	needle  []byte
	workers int
	limit   int
	filter  *bitset.BitSet
}

// Workers overrides the Matcher's worker count for this query.
func (sb *SearchBuilder) Workers(n int) *SearchBuilder {
	sb.workers = n
	return sb
}

// Limit caps the number of returned matches. Zero means unlimited.
func (sb *SearchBuilder) Limit(n int) *SearchBuilder {
	sb.limit = n
	return sb
}

// Filter restricts scoring to the line indices set in the bitset. Use
// Results.FilterSet from a previous query to narrow a refined query to the
// prior result set.
func (sb *SearchBuilder) Filter(bs *bitset.BitSet) *SearchBuilder {
	sb.filter = bs
	return sb
}

// Execute runs the query and returns the ranked results.
func (sb *SearchBuilder) Execute(ctx context.Context) (Results, error) {
	start := time.Now()

	matches, err := engine.Run(ctx, engine.Params{
		Needle:    sb.needle,
		Lines:     sb.m.lines,
		Workers:   sb.workers,
		ChunkSize: sb.m.opts.chunkSize,
		Limit:     sb.limit,
		Filter:    sb.filter,
		Resources: sb.m.opts.resources,
	})
	err = translateError(err)

	results := make(Results, len(matches))
	for i, match := range matches {
		results[i] = Match(match)
	}

	sb.m.opts.metricsCollector.RecordMatch(len(sb.m.lines), len(results), time.Since(start), err)
	sb.m.opts.logger.LogMatch(ctx, len(sb.needle), len(results), err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// First returns only the best match, or ErrNoMatch if nothing scored.
func (sb *SearchBuilder) First(ctx context.Context) (Match, error) {
	sb.limit = 1
	results, err := sb.Execute(ctx)
	if err != nil {
		return Match{}, err
	}
	if len(results) == 0 {
		return Match{}, ErrNoMatch
	}
	return results[0], nil
}

// Count executes the query and returns the number of matches.
func (sb *SearchBuilder) Count(ctx context.Context) (int, error) {
	results, err := sb.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

// Exists checks if at least one candidate matches the needle.
func (sb *SearchBuilder) Exists(ctx context.Context) (bool, error) {
	sb.limit = 1
	results, err := sb.Execute(ctx)
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}
