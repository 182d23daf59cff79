// Package retrieval ranks statute sections against a case description with
// TF-IDF weighted cosine similarity.
//
// An Index is built once from the corpus and is read-only afterwards, so a
// single Index may be queried from many goroutines without locking.
package retrieval

import (
	"fmt"
	"math"
	"sort"

	"firassist/internal/domain"
)

const (
	// DefaultTopK is the number of ranked sections considered per query.
	DefaultTopK = 5
	// DefaultMinScore is the exclusive similarity threshold for a match.
	DefaultMinScore = 0.1
)

// weight is one non-zero dimension of a sparse vector.
type weight struct {
	dim   int
	value float64
}

// Index holds the vocabulary, IDF weights and unit-length document vectors
// for an immutable statute corpus.
type Index struct {
	tokenizer  *Tokenizer
	entries    []domain.StatuteEntry
	vocabulary map[string]int
	idf        []float64
	docs       []map[int]float64
}

// Build indexes the corpus. Entry order is kept and decides ties at query time.
func Build(corpus []domain.StatuteEntry) (*Index, error) {
	return BuildWithTokenizer(corpus, NewTokenizer())
}

// BuildWithTokenizer indexes the corpus using tok for both indexing and querying.
func BuildWithTokenizer(corpus []domain.StatuteEntry, tok *Tokenizer) (*Index, error) {
	if len(corpus) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	seenIDs := make(map[string]struct{}, len(corpus))
	for _, e := range corpus {
		if _, ok := seenIDs[e.SectionID]; ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateKey, e.SectionID)
		}
		seenIDs[e.SectionID] = struct{}{}
	}

	// Document frequencies
	docTokens := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, e := range corpus {
		tokens := tok.Tokens(e.Description)
		docTokens[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	// Stable ordering for vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	ix := &Index{
		tokenizer:  tok,
		entries:    append([]domain.StatuteEntry(nil), corpus...),
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		docs:       make([]map[int]float64, len(corpus)),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		ix.vocabulary[term] = i
		// Smoothed IDF
		ix.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	for i, tokens := range docTokens {
		vec := make(map[int]float64)
		for _, w := range ix.vectorize(tokens) {
			vec[w.dim] = w.value
		}
		ix.docs[i] = vec
	}
	return ix, nil
}

// Len returns the number of indexed sections.
func (ix *Index) Len() int { return len(ix.entries) }

// VocabularySize returns the number of distinct terms in the index.
func (ix *Index) VocabularySize() int { return len(ix.vocabulary) }

// Entries returns a copy of the indexed corpus in its original order.
func (ix *Index) Entries() []domain.StatuteEntry {
	return append([]domain.StatuteEntry(nil), ix.entries...)
}

// Query ranks all sections against text and returns at most k of them whose
// score is strictly greater than minScore, best first.
//
// The threshold is applied after truncation to k: a section ranked below k is
// never returned even if its score would pass.
func (ix *Index) Query(text string, k int, minScore float64) ([]domain.SectionMatch, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", domain.ErrInvalidArgument, k)
	}
	if math.IsNaN(minScore) || minScore < 0 || minScore > 1 {
		return nil, fmt.Errorf("%w: min score must be in [0,1], got %v", domain.ErrInvalidArgument, minScore)
	}
	query := ix.vectorize(ix.tokenizer.Tokens(text))
	if len(query) == 0 {
		return []domain.SectionMatch{}, nil
	}

	scores := make([]float64, len(ix.docs))
	for i, doc := range ix.docs {
		scores[i] = dot(doc, query)
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	if k > len(order) {
		k = len(order)
	}

	out := make([]domain.SectionMatch, 0, k)
	for _, i := range order[:k] {
		if scores[i] <= minScore {
			continue
		}
		out = append(out, domain.SectionMatch{
			SectionID:   ix.entries[i].SectionID,
			Description: ix.entries[i].Description,
			Score:       scores[i],
		})
	}
	return out, nil
}

// vectorize computes the L2-normalized TF-IDF vector of tokens, ordered by
// dimension. Out-of-vocabulary tokens are dropped; an empty result means the
// zero vector.
func (ix *Index) vectorize(tokens []string) []weight {
	tf := make(map[int]int)
	for _, t := range tokens {
		if dim, ok := ix.vocabulary[t]; ok {
			tf[dim]++
		}
	}
	if len(tf) == 0 {
		return nil
	}
	vec := make([]weight, 0, len(tf))
	for dim, count := range tf {
		vec = append(vec, weight{dim: dim, value: float64(count) * ix.idf[dim]})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].dim < vec[b].dim })

	// L2 normalize
	norm := 0.0
	for _, w := range vec {
		norm += w.value * w.value
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].value /= norm
	}
	return vec
}

// dot is the cosine similarity of two unit vectors, clamped to [0,1].
func dot(doc map[int]float64, query []weight) float64 {
	sum := 0.0
	for _, w := range query {
		sum += doc[w.dim] * w.value
	}
	if sum > 1 {
		return 1
	}
	if sum < 0 {
		return 0
	}
	return sum
}
