package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeStripsLinksAndMentions(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("RT @some_bot: Senators VOTED today!!! https://t.co/abc123 www.example.com")
	assert.Equal(t, []string{"senator", "vote", "today"}, tokens)
}

func TestTokenizeStopwordsAndStems(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("The impeachment of the president and the votes")
	assert.Equal(t, []string{"impeach", "president", "vote"}, tokens)
}

func TestTokenizeKeepsHashtags(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("watching #MAGA and #resist tonight")
	assert.Contains(t, tokens, "#maga")
	assert.Contains(t, tokens, "#resist")
}

func TestTokenizeEmpty(t *testing.T) {
	tok := NewTokenizer()
	assert.Empty(t, tok.Tokenize("https://t.co/abc @user_one"))
}

func TestLoadCustomRules(t *testing.T) {
	rules := `
stopwords:
  - breaking
stems:
  potuses: potus
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rules), 0o644))

	tok := NewTokenizer()
	require.NoError(t, tok.LoadCustomRules(path))

	tokens := tok.Tokenize("BREAKING both potuses impeached")
	assert.Equal(t, []string{"potus", "impeach"}, tokens)
}

func TestLoadCustomRulesMissingFile(t *testing.T) {
	tok := NewTokenizer()
	assert.Error(t, tok.LoadCustomRules(filepath.Join(t.TempDir(), "nope.yaml")))
}
