package diagnosis

import (
	"context"

	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

// Service coordinates error diagnosis using rule-based classifiers and
// optional LLM-based misconception identification.
type Service struct {
	classifiers []Classifier
	diagnoser   *Diagnoser
	pending     chan diagnosisJob
}

type diagnosisJob struct {
	ctx context.Context
	req *DiagnosisRequest
	cb  func(*DiagnosisResult)
}

// NewService creates a diagnosis service. If provider is nil, only rule-based
// classification is available.
func NewService(provider llm.Provider) *Service {
	s := &Service{
		classifiers: DefaultClassifiers(),
		pending:     make(chan diagnosisJob, 32),
	}
	if provider != nil {
		s.diagnoser = NewDiagnoser(provider, DefaultDiagnoserConfig())
		go s.processLoop()
	}
	return s
}

// Diagnose classifies one wrong part. Rule-based classification is
// synchronous. If rules are inconclusive and an LLM is available, async LLM
// diagnosis is dispatched and the callback fires when the result is ready.
// Returns the synchronous result immediately.
func (s *Service) Diagnose(
	ctx context.Context,
	question *quiz.Question,
	part quiz.PartResult,
	responseTimeMs int,
	kindAccuracy float64,
	cb func(*DiagnosisResult),
) *DiagnosisResult {
	p, _ := question.Part(part.Label)
	input := &ClassifyInput{
		Question:       question,
		Part:           p,
		LearnerAnswer:  part.Given,
		Tag:            part.Tag,
		ResponseTimeMs: responseTimeMs,
		KindAccuracy:   kindAccuracy,
	}

	// Phase 1: Rule-based (synchronous).
	if result := RunClassifiers(s.classifiers, input); result != nil {
		return result
	}

	// Phase 2: LLM (async).
	if s.diagnoser != nil {
		s.dispatchLLM(ctx, input, cb)
	}

	// Return unclassified immediately; LLM result arrives via callback.
	return &DiagnosisResult{
		Category:       CategoryUnclassified,
		Confidence:     0,
		ClassifierName: "none",
	}
}

func (s *Service) dispatchLLM(ctx context.Context, input *ClassifyInput, cb func(*DiagnosisResult)) {
	candidates := MisconceptionsBySection(input.Question.Section)
	if len(candidates) == 0 {
		return
	}

	select {
	case s.pending <- diagnosisJob{ctx: ctx, req: newDiagnosisRequest(input, candidates), cb: cb}:
	default:
		// Channel full: drop the diagnosis.
	}
}

func (s *Service) processLoop() {
	for job := range s.pending {
		result, err := s.diagnoser.Diagnose(job.ctx, job.req)
		if err != nil || result == nil {
			continue
		}
		if job.cb != nil {
			job.cb(result)
		}
	}
}

// Close shuts down the async processing loop.
func (s *Service) Close() {
	close(s.pending)
}
