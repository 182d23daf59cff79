package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"firassist/internal/retrieval"
)

// A sentence runs up to a group of terminators, so "..." and "?!" stay attached.
var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)

// FrequencySummarizer condenses a case description by ranking its sentences
// on the frequency of their index terms.
type FrequencySummarizer struct {
	tokenizer *retrieval.Tokenizer
}

// NewFrequencySummarizer creates a summarizer sharing the retrieval tokenizer.
func NewFrequencySummarizer(tok *retrieval.Tokenizer) *FrequencySummarizer {
	if tok == nil {
		tok = retrieval.NewTokenizer()
	}
	return &FrequencySummarizer{tokenizer: tok}
}

// Summarize returns up to maxSentences of the highest-scoring sentences in
// their original order.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 2
	}
	sentences := splitSentences(text)
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " "), nil
	}

	freq := map[string]float64{}
	tokens := make([][]string, len(sentences))
	for i, sent := range sentences {
		tokens[i] = s.tokenizer.Tokens(sent)
		for _, tok := range tokens[i] {
			freq[tok]++
		}
	}
	// Normalize frequencies
	maxF := 0.0
	for _, v := range freq {
		maxF = math.Max(maxF, v)
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i := range sentences {
		sscore := 0.0
		for _, tok := range tokens[i] {
			sscore += freq[tok]
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(tokens[i])); l > 0 {
			sscore /= math.Sqrt(l)
		}
		scores[i] = pair{i, sscore}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	// Keep original order among selected
	selected := make([]int, maxSentences)
	for i := range selected {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, sentences[idx])
	}
	return strings.Join(out, " "), nil
}

func splitSentences(text string) []string {
	var out []string
	end := 0
	for _, loc := range sentenceRe.FindAllStringIndex(text, -1) {
		if t := strings.TrimSpace(text[loc[0]:loc[1]]); t != "" {
			out = append(out, t)
		}
		end = loc[1]
	}
	// Trailing text without terminal punctuation
	if rest := strings.TrimSpace(text[end:]); rest != "" {
		out = append(out, rest)
	}
	return out
}
