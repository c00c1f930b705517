// Package exam holds the fixed question banks and the runner that walks a
// student through one paper and scores it.
package exam

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
)

var (
	ErrUnknownSubject    = errors.New("unknown exam subject")
	ErrUnknownDifficulty = errors.New("unknown exam difficulty")
)

//go:embed banks.yaml
var defaultBanks []byte

type Question struct {
	ID          string   `yaml:"id"`
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Answer      int      `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
}

type Subject struct {
	Name     string     `yaml:"name"`
	Easy     []Question `yaml:"easy"`
	Moderate []Question `yaml:"moderate"`
}

type Bank struct {
	Subjects map[string]Subject `yaml:"subjects"`

	byID map[string]Question
}

// QuestionCount is the paper length for a difficulty.
func QuestionCount(difficulty string) (int, error) {
	switch difficulty {
	case DifficultyEasy:
		return 5, nil
	case DifficultyModerate:
		return 8, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
}

// LoadDefault parses the embedded banks.
func LoadDefault() (*Bank, error) {
	return Parse(defaultBanks)
}

func Parse(data []byte) (*Bank, error) {
	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question banks: %w", err)
	}
	if len(bank.Subjects) == 0 {
		return nil, errors.New("question banks are empty")
	}

	bank.byID = make(map[string]Question)
	for key, subject := range bank.Subjects {
		for _, difficulty := range []string{DifficultyEasy, DifficultyModerate} {
			questions := subject.questions(difficulty)
			need, _ := QuestionCount(difficulty)
			if len(questions) < need {
				return nil, fmt.Errorf("subject %s has %d %s questions, need %d", key, len(questions), difficulty, need)
			}
			for _, q := range questions {
				if q.ID == "" {
					return nil, fmt.Errorf("subject %s has a question without id", key)
				}
				if len(q.Options) < 2 {
					return nil, fmt.Errorf("question %s needs at least two options", q.ID)
				}
				if q.Answer < 0 || q.Answer >= len(q.Options) {
					return nil, fmt.Errorf("question %s answer %d out of range", q.ID, q.Answer)
				}
				if _, dup := bank.byID[q.ID]; dup {
					return nil, fmt.Errorf("duplicate question id %s", q.ID)
				}
				bank.byID[q.ID] = q
			}
		}
	}

	return &bank, nil
}

func (s Subject) questions(difficulty string) []Question {
	if difficulty == DifficultyEasy {
		return s.Easy
	}
	return s.Moderate
}

// SubjectKeys returns the subject keys in stable order.
func (b *Bank) SubjectKeys() []string {
	keys := make([]string, 0, len(b.Subjects))
	for k := range b.Subjects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *Bank) Questions(subject, difficulty string) ([]Question, error) {
	s, ok := b.Subjects[subject]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
	}
	if _, err := QuestionCount(difficulty); err != nil {
		return nil, err
	}
	return s.questions(difficulty), nil
}

// Draw shuffles the bank for subject/difficulty and returns a paper of
// QuestionCount(difficulty) questions.
func (b *Bank) Draw(subject, difficulty string, rng *rand.Rand) ([]Question, error) {
	pool, err := b.Questions(subject, difficulty)
	if err != nil {
		return nil, err
	}
	n, _ := QuestionCount(difficulty)

	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n], nil
}

// Lookup finds a question of the given subject and difficulty by id.
func (b *Bank) Lookup(subject, difficulty, id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	pool, err := b.Questions(subject, difficulty)
	if err != nil {
		return Question{}, false
	}
	for _, candidate := range pool {
		if candidate.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
