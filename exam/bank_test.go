package exam

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultBanks(t *testing.T) {
	bank, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"engineering", "math", "science", "technology"}, bank.SubjectKeys())

	for _, key := range bank.SubjectKeys() {
		easy, err := bank.Questions(key, DifficultyEasy)
		require.NoError(t, err)
		assert.Len(t, easy, 5, key)

		moderate, err := bank.Questions(key, DifficultyModerate)
		require.NoError(t, err)
		assert.Len(t, moderate, 8, key)
	}

	q, ok := bank.Lookup("math", DifficultyEasy, "math-easy-1")
	require.True(t, ok)
	assert.Equal(t, "What is 5 + 3?", q.Question)
	assert.Equal(t, "8", q.Options[q.Answer])
}

func TestQuestionCount(t *testing.T) {
	n, err := QuestionCount(DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = QuestionCount(DifficultyModerate)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	_, err = QuestionCount("hard")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestDraw(t *testing.T) {
	bank, err := LoadDefault()
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	qs, err := bank.Draw("science", DifficultyModerate, rng)
	require.NoError(t, err)
	assert.Len(t, qs, 8)

	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate %s", q.ID)
		seen[q.ID] = true
		_, ok := bank.Lookup("science", DifficultyModerate, q.ID)
		assert.True(t, ok)
	}

	_, err = bank.Draw("history", DifficultyEasy, rng)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestLookupScopedToPaper(t *testing.T) {
	bank, err := LoadDefault()
	require.NoError(t, err)

	_, ok := bank.Lookup("science", DifficultyEasy, "math-easy-1")
	assert.False(t, ok)
	_, ok = bank.Lookup("math", DifficultyModerate, "math-easy-1")
	assert.False(t, ok)
}

func TestParseRejectsBadAnswer(t *testing.T) {
	data := []byte(`
subjects:
  art:
    name: Art
    easy:
      - {id: a1, question: q, options: [x, y], answer: 2}
      - {id: a2, question: q, options: [x, y], answer: 0}
      - {id: a3, question: q, options: [x, y], answer: 0}
      - {id: a4, question: q, options: [x, y], answer: 0}
      - {id: a5, question: q, options: [x, y], answer: 0}
    moderate: []
`)
	_, err := Parse(data)
	assert.Error(t, err)
}
