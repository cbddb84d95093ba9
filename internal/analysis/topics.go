package analysis

import (
	"fmt"
	"sort"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"

	"github.com/spacesedan/botscope/internal/models"
)

const (
	DefaultTopicCount    = 5
	DefaultLDAIterations = 50
)

// TopicModel holds a fitted LDA model and the vocabulary index needed to
// turn its components back into terms.
type TopicModel struct {
	lda   *nlp.LatentDirichletAllocation
	vocab []string
}

// TrainTopicModel fits an LDA topic model over the documents using a count
// vectoriser pipeline. Documents should be pre-cleaned text; vectoriser
// stopword handling is left to the tokenizer upstream.
func TrainTopicModel(docs []string, numTopics, iterations int) (*TopicModel, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("[Topics] no documents to model")
	}

	vectoriser := nlp.NewCountVectoriser()
	lda := nlp.NewLatentDirichletAllocation(numTopics)
	lda.Iterations = iterations

	pipeline := nlp.NewPipeline(vectoriser, lda)
	if _, err := pipeline.FitTransform(docs...); err != nil {
		return nil, fmt.Errorf("[Topics] failed to fit LDA model: %w", err)
	}

	vocab := make([]string, len(vectoriser.Vocabulary))
	for term, index := range vectoriser.Vocabulary {
		vocab[index] = term
	}

	return &TopicModel{lda: lda, vocab: vocab}, nil
}

// TopTerms returns the perTopic highest-weighted terms of every topic.
func (m *TopicModel) TopTerms(perTopic int) []models.TopicTerm {
	return parseTopics(m.lda.Components(), m.vocab, perTopic)
}

func parseTopics(components mat.Matrix, vocab []string, perTopic int) []models.TopicTerm {
	topics, terms := components.Dims()

	var rows []models.TopicTerm
	for topic := 0; topic < topics; topic++ {
		weighted := make([]models.TopicTerm, 0, terms)
		for term := 0; term < terms && term < len(vocab); term++ {
			weighted = append(weighted, models.TopicTerm{
				Topic:  topic,
				Term:   vocab[term],
				Weight: components.At(topic, term),
			})
		}

		sort.Slice(weighted, func(i, j int) bool {
			if weighted[i].Weight != weighted[j].Weight {
				return weighted[i].Weight > weighted[j].Weight
			}
			return weighted[i].Term < weighted[j].Term
		})

		if perTopic < len(weighted) {
			weighted = weighted[:perTopic]
		}
		rows = append(rows, weighted...)
	}
	return rows
}
