package exam

import (
	"errors"
	"fmt"
	"math"
)

type State int

const (
	Presenting State = iota
	Answered
	Finished
)

func (s State) String() string {
	switch s {
	case Presenting:
		return "presenting"
	case Answered:
		return "answered"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	ErrEmptyPaper    = errors.New("exam has no questions")
	ErrInvalidOption = errors.New("option out of range")
	ErrNotAnswered   = errors.New("current question has not been answered")
	ErrAtFirst       = errors.New("already at the first question")
	ErrFinished      = errors.New("exam already finished")
	ErrNotFinished   = errors.New("exam not finished")
)

const unanswered = -1

// Runner walks one paper: Presenting(i) -> Answered(i) -> Presenting(i+1)
// ... -> Finished. Nothing is persisted; a dropped runner loses its answers.
type Runner struct {
	questions []Question
	answers   []int
	index     int
	state     State
}

func NewRunner(questions []Question) (*Runner, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyPaper
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = unanswered
	}
	return &Runner{
		questions: questions,
		answers:   answers,
		state:     Presenting,
	}, nil
}

func (r *Runner) State() State {
	return r.state
}

// Index is the position of the question being shown.
func (r *Runner) Index() int {
	return r.index
}

func (r *Runner) Current() Question {
	return r.questions[r.index]
}

func (r *Runner) Len() int {
	return len(r.questions)
}

// Select records an option for the current question. Changing an answer
// before advancing is allowed.
func (r *Runner) Select(option int) error {
	if r.state == Finished {
		return ErrFinished
	}
	if option < 0 || option >= len(r.questions[r.index].Options) {
		return fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	r.answers[r.index] = option
	r.state = Answered
	return nil
}

// Next advances past an answered question, finishing after the last one.
func (r *Runner) Next() error {
	switch r.state {
	case Finished:
		return ErrFinished
	case Presenting:
		return ErrNotAnswered
	}

	if r.index == len(r.questions)-1 {
		r.state = Finished
		return nil
	}
	r.index++
	r.state = r.stateAt(r.index)
	return nil
}

// Previous steps back one question, restoring its recorded answer.
func (r *Runner) Previous() error {
	if r.state == Finished {
		return ErrFinished
	}
	if r.index == 0 {
		return ErrAtFirst
	}
	r.index--
	r.state = r.stateAt(r.index)
	return nil
}

func (r *Runner) stateAt(i int) State {
	if r.answers[i] == unanswered {
		return Presenting
	}
	return Answered
}

// Result scores a finished paper.
func (r *Runner) Result() (Result, error) {
	if r.state != Finished {
		return Result{}, ErrNotFinished
	}

	res := Result{Total: len(r.questions)}
	for i, q := range r.questions {
		ok := r.answers[i] == q.Answer
		if ok {
			res.Correct++
		}
		res.Answers = append(res.Answers, AnswerReview{
			Question: q,
			Selected: r.answers[i],
			Correct:  ok,
		})
	}
	res.Score = Score(res.Correct, res.Total)
	res.Points = Points(res.Score)
	return res, nil
}

type AnswerReview struct {
	Question Question
	Selected int
	Correct  bool
}

type Result struct {
	Correct int
	Total   int
	Score   int
	Points  int
	Answers []AnswerReview
}

// Score is the percentage of correct answers, rounded half up.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Points awards 5 points per 10% of score.
func Points(score int) int {
	return int(math.Round(float64(score)/10)) * 5
}
