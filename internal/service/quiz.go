package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/hiragana-quiz/internal/domain/entities"
)

var (
	ErrQuizFinished     = errors.New("quiz is finished")
	ErrNoActiveQuestion = errors.New("no active question")
	ErrInvalidChoice    = errors.New("invalid choice")
)

// QuizService runs a single fixed-length quiz session at a time.
type QuizService struct {
	kanaRepo  KanaRepository
	generator OptionsGenerator
	logger    *zap.Logger

	session *entities.QuizSession
	current *entities.Question
}

func NewQuizService(
	kanaRepo KanaRepository,
	generator OptionsGenerator,
	logger *zap.Logger,
) *QuizService {
	s := &QuizService{
		kanaRepo:  kanaRepo,
		generator: generator,
		logger:    logger,
	}
	s.Reset()

	return s
}

// Reset discards the current session and starts a new one.
func (s *QuizService) Reset() {
	s.session = entities.NewQuizSession()
	s.current = nil

	s.logger.Debug("quiz session started",
		zap.String("session_id", s.session.ID.String()),
		zap.Int("total_questions", s.session.TotalQuestions),
	)
}

// NextQuestion draws a random romaji and builds a question for it.
// Romaji may repeat within a session. A question that was drawn but not
// answered is replaced.
func (s *QuizService) NextQuestion() (*entities.Question, error) {
	if s.session.Finished() {
		return nil, ErrQuizFinished
	}

	kana, err := s.kanaRepo.GetRandom()
	if err != nil {
		return nil, fmt.Errorf("draw kana: %w", err)
	}

	correct, err := s.kanaRepo.CharacterFor(kana.Romaji)
	if err != nil {
		return nil, fmt.Errorf("look up character: %w", err)
	}

	options, err := s.generator.Generate(correct)
	if err != nil {
		return nil, fmt.Errorf("generate options: %w", err)
	}

	correctIndex := -1
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}
	if correctIndex < 0 {
		return nil, fmt.Errorf("options for %q: %w", kana.Romaji, ErrUnknownCharacter)
	}

	s.current = &entities.Question{
		Romaji:        kana.Romaji,
		CorrectAnswer: correct,
		Options:       options,
		CorrectIndex:  correctIndex,
	}

	s.logger.Debug("question drawn",
		zap.String("session_id", s.session.ID.String()),
		zap.Int("question_num", s.session.QuestionsAsked+1),
		zap.String("romaji", kana.Romaji),
	)

	return s.current, nil
}

// AnswerQuestion checks the option at selectedIndex (0-based) against the
// current question and updates the score.
func (s *QuizService) AnswerQuestion(selectedIndex int) (*entities.QuizAnswer, error) {
	if s.session.Finished() {
		return nil, ErrQuizFinished
	}
	if s.current == nil {
		return nil, ErrNoActiveQuestion
	}
	if selectedIndex < 0 || selectedIndex >= len(s.current.Options) {
		return nil, fmt.Errorf("index %d of %d options: %w", selectedIndex, len(s.current.Options), ErrInvalidChoice)
	}

	qa := entities.NewQuizAnswer(s.current, selectedIndex)
	s.session.RecordAnswer(qa.IsCorrect)
	s.current = nil

	s.logger.Debug("question answered",
		zap.String("session_id", s.session.ID.String()),
		zap.String("romaji", qa.Romaji),
		zap.String("user_answer", qa.UserAnswer),
		zap.String("correct_answer", qa.CorrectAnswer),
		zap.Bool("is_correct", qa.IsCorrect),
		zap.Int("score", s.session.Score),
		zap.Int("questions_asked", s.session.QuestionsAsked),
	)

	if s.session.Finished() {
		s.logger.Info("quiz session completed",
			zap.String("session_id", s.session.ID.String()),
			zap.Int("score", s.session.Score),
			zap.Int("total_questions", s.session.TotalQuestions),
			zap.Duration("duration", s.session.Duration()),
		)
	}

	return qa, nil
}

func (s *QuizService) Score() int {
	return s.session.Score
}

func (s *QuizService) QuestionsAsked() int {
	return s.session.QuestionsAsked
}

func (s *QuizService) Finished() bool {
	return s.session.Finished()
}
