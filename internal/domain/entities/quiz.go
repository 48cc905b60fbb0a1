package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuestionsPerSession is the fixed length of a quiz session.
const QuestionsPerSession = 10

// SessionStatus describes where a quiz session is in its lifecycle.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusFinished   SessionStatus = "finished"
)

// QuizSession represents a single run of the quiz.
// It tracks the score, the number of answered questions and the session status.
type QuizSession struct {
	ID             uuid.UUID     // session id used to correlate log entries
	Score          int           // number of correct answers so far
	QuestionsAsked int           // number of answered questions
	TotalQuestions int           // total number of questions in the session
	Status         SessionStatus // "in_progress" or "finished"
	StartedAt      time.Time     // timestamp when the session started
	CompletedAt    *time.Time    // timestamp when the session finished (nullable)
}

// NewQuizSession creates a fresh session in the initial state.
func NewQuizSession() *QuizSession {
	return &QuizSession{
		ID:             uuid.New(),
		TotalQuestions: QuestionsPerSession,
		Status:         StatusInProgress,
		StartedAt:      time.Now(),
	}
}

// Finished reports whether all questions of the session have been answered.
func (qs *QuizSession) Finished() bool {
	return qs.Status == StatusFinished
}

// RecordAnswer counts an answered question and finishes the session
// once the last question has been answered.
func (qs *QuizSession) RecordAnswer(isCorrect bool) {
	if isCorrect {
		qs.Score++
	}
	qs.QuestionsAsked++

	if qs.QuestionsAsked >= qs.TotalQuestions {
		qs.Complete()
	}
}

// Duration returns how long the session took, or has taken so far.
func (qs *QuizSession) Duration() time.Duration {
	if qs.CompletedAt != nil {
		return qs.CompletedAt.Sub(qs.StartedAt)
	}
	return time.Since(qs.StartedAt)
}

// Complete marks the quiz session as finished and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.Status = StatusFinished
	now := time.Now()
	qs.CompletedAt = &now
}

// QuizAnswer represents the outcome of answering a single question.
type QuizAnswer struct {
	Romaji        string // romaji the question asked about
	UserAnswer    string // character the user picked
	CorrectAnswer string // correct character
	IsCorrect     bool   // whether the answer was correct
}

// NewQuizAnswer builds the answer outcome for the option at selectedIndex.
func NewQuizAnswer(q *Question, selectedIndex int) *QuizAnswer {
	return &QuizAnswer{
		Romaji:        q.Romaji,
		UserAnswer:    q.Options[selectedIndex],
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     q.IsCorrect(selectedIndex),
	}
}
