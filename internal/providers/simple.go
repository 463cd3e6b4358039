package providers

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/internal/textutil"
)

const (
	maxKeyphrases  = 10
	maxSummaryLen  = 280
	positiveCutoff = 0.6
	negativeCutoff = 0.4
)

var (
	sentimentWordRe = regexp.MustCompile(`[a-zA-Z']+`)
	keywordRe       = regexp.MustCompile(`[a-zA-Z][a-zA-Z\-']+`)
)

var positiveWords = wordSet(
	"good", "great", "excellent", "love", "like",
	"awesome", "amazing", "happy", "satisfied", "fantastic",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "hate", "dislike",
	"sad", "angry", "slow", "bug", "issue",
)

var stopwords = wordSet(
	"the", "is", "a", "an", "and", "or", "of", "to", "in", "on",
	"for", "with", "that", "this", "it", "as", "at", "by", "from",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Simple is a lexicon and frequency based provider with no external model.
type Simple struct{}

func NewSimple() *Simple {
	return &Simple{}
}

func (s *Simple) Name() string { return "simple" }

func (s *Simple) Models() map[string]string { return map[string]string{} }

func (s *Simple) Sentiment(_ context.Context, text string) (*apimodels.SentimentResult, error) {
	words := sentimentWordRe.FindAllString(strings.ToLower(textutil.Normalize(text)), -1)

	var pos, neg int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}
	if pos == 0 && neg == 0 {
		return &apimodels.SentimentResult{Label: apimodels.SentimentNeutral, Score: 0.5}, nil
	}

	score := float64(pos) / float64(pos+neg)
	label := apimodels.SentimentNeutral
	switch {
	case score > positiveCutoff:
		label = apimodels.SentimentPositive
	case score < negativeCutoff:
		label = apimodels.SentimentNegative
	}

	return &apimodels.SentimentResult{Label: label, Score: roundScore(score)}, nil
}

// Keyphrases returns the leading two-word phrase of each sentence followed by
// the most frequent words, deduplicated and capped at ten.
func (s *Simple) Keyphrases(_ context.Context, text string) ([]string, error) {
	var phrases []string
	for _, sentence := range textutil.SplitSentences(text) {
		lowered := strings.ToLower(textutil.Normalize(sentence))
		var words []string
		for _, w := range keywordRe.FindAllString(lowered, -1) {
			if _, stop := stopwords[w]; !stop {
				words = append(words, w)
			}
		}
		if len(words) >= 2 {
			phrases = append(phrases, words[0]+" "+words[1])
		}
	}

	result := make([]string, 0, maxKeyphrases)
	seen := make(map[string]bool)
	for _, p := range append(phrases, topWords(text, maxKeyphrases)...) {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
		if len(result) == maxKeyphrases {
			break
		}
	}
	return result, nil
}

func (s *Simple) Summarize(_ context.Context, text string) (string, error) {
	sentences := textutil.SplitSentences(text)
	if len(sentences) == 0 {
		return "", nil
	}
	return textutil.Truncate(textutil.Normalize(sentences[0]), maxSummaryLen), nil
}

// topWords ranks words by frequency, breaking ties alphabetically.
func topWords(text string, n int) []string {
	freq := make(map[string]int)
	for _, w := range keywordRe.FindAllString(strings.ToLower(textutil.Normalize(text)), -1) {
		if _, stop := stopwords[w]; stop || len(w) <= 2 {
			continue
		}
		freq[w]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}

func roundScore(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
