package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestParseTopics(t *testing.T) {
	// two topics over four terms
	components := mat.NewDense(2, 4, []float64{
		0.5, 0.3, 0.1, 0.1,
		0.1, 0.1, 0.2, 0.6,
	})
	vocab := []string{"impeach", "senate", "vote", "trump"}

	rows := parseTopics(components, vocab, 2)
	require.Len(t, rows, 4)

	assert.Equal(t, 0, rows[0].Topic)
	assert.Equal(t, "impeach", rows[0].Term)
	assert.Equal(t, "senate", rows[1].Term)

	assert.Equal(t, 1, rows[2].Topic)
	assert.Equal(t, "trump", rows[2].Term)
	assert.Equal(t, "vote", rows[3].Term)
}

func TestParseTopicsPerTopicClamp(t *testing.T) {
	components := mat.NewDense(1, 2, []float64{0.4, 0.6})
	vocab := []string{"a", "b"}

	rows := parseTopics(components, vocab, 10)
	assert.Len(t, rows, 2)
}

func TestTrainTopicModelNoDocs(t *testing.T) {
	_, err := TrainTopicModel(nil, DefaultTopicCount, DefaultLDAIterations)
	assert.Error(t, err)
}
