// Package analysis computes token, topic, sentiment, and retweet
// aggregates over community tweet slices.
package analysis

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	nonWordPattern = regexp.MustCompile(`[^a-z0-9#' ]+`)
)

// defaultStopwords covers common English filler plus retweet boilerplate.
var defaultStopwords = []string{
	"a", "about", "after", "all", "also", "am", "amp", "an", "and", "are",
	"as", "at", "be", "because", "been", "before", "both", "but", "by", "can",
	"could", "did", "do", "does", "down", "for", "from", "get", "got",
	"had", "has", "have", "he", "her", "here", "him", "his", "how", "i",
	"if", "in", "into", "is", "it", "its", "just", "like", "me", "more",
	"my", "no", "not", "now", "of", "on", "one", "only", "or", "our",
	"out", "over", "rt", "said", "she", "so", "some", "than", "that",
	"the", "their", "them", "then", "there", "they", "this", "to", "too",
	"u", "up", "us", "via", "was", "we", "were", "what", "when", "which",
	"who", "why", "will", "with", "would", "you", "your",
}

// defaultStems folds the domain's high-frequency variants onto one token.
var defaultStems = map[string]string{
	"impeached":    "impeach",
	"impeachment":  "impeach",
	"impeachments": "impeach",
	"impeaching":   "impeach",
	"trumps":       "trump",
	"democrats":    "democrat",
	"republicans":  "republican",
	"senators":     "senator",
	"votes":        "vote",
	"voted":        "vote",
	"voting":       "vote",
}

type Tokenizer struct {
	stopwords map[string]struct{}
	stems     map[string]string
}

func NewTokenizer() *Tokenizer {
	t := &Tokenizer{
		stopwords: make(map[string]struct{}, len(defaultStopwords)),
		stems:     make(map[string]string, len(defaultStems)),
	}
	for _, w := range defaultStopwords {
		t.stopwords[w] = struct{}{}
	}
	for from, to := range defaultStems {
		t.stems[from] = to
	}
	return t
}

// tokenizerRules is the optional YAML overlay of extra stopwords and stem
// foldings.
type tokenizerRules struct {
	Stopwords []string          `yaml:"stopwords"`
	Stems     map[string]string `yaml:"stems"`
}

// LoadCustomRules merges extra stopwords and stems from a YAML file on top
// of the defaults.
func (t *Tokenizer) LoadCustomRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("[Tokenizer] failed to read rules file: %w", err)
	}

	var rules tokenizerRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("[Tokenizer] failed to parse rules file: %w", err)
	}

	for _, w := range rules.Stopwords {
		t.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for from, to := range rules.Stems {
		t.stems[strings.ToLower(from)] = strings.ToLower(to)
	}
	return nil
}

// Tokenize lowercases, strips links and mentions, splits on non-word
// characters, then applies stopword filtering and stem folding.
func (t *Tokenizer) Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = mentionPattern.ReplaceAllString(text, " ")
	text = nonWordPattern.ReplaceAllString(text, " ")

	var tokens []string
	for _, field := range strings.Fields(text) {
		field = strings.Trim(field, "'")
		if field == "" {
			continue
		}
		if stem, ok := t.stems[field]; ok {
			field = stem
		}
		if _, stopped := t.stopwords[field]; stopped {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
