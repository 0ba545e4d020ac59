package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/history"
	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrLengthOutOfRange = errors.New("password length is out of range")

// Limits bounds what callers of the service may request.
type Limits struct {
	DefaultLength int
	MaxLength     int
}

// DefaultLimits returns a 12 character default and a 128 character cap.
func DefaultLimits() Limits {
	return Limits{DefaultLength: crypto.DefaultLength, MaxLength: 128}
}

// GeneratorService handles password generation business logic. Every
// generated password is appended to the session history it was built with.
type GeneratorService struct {
	history   *history.History
	limits    Limits
	generator *crypto.Generator
}

// Option customises a GeneratorService.
type Option func(*GeneratorService)

// WithGenerator replaces the crypto/rand backed generator.
func WithGenerator(g *crypto.Generator) Option {
	return func(s *GeneratorService) {
		if g != nil {
			s.generator = g
		}
	}
}

// NewGeneratorService creates a new GeneratorService recording into h.
func NewGeneratorService(h *history.History, limits Limits, opts ...Option) *GeneratorService {
	if limits.DefaultLength <= 0 {
		limits.DefaultLength = crypto.DefaultLength
	}
	s := &GeneratorService{history: h, limits: limits, generator: crypto.NewGenerator(nil)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    intOrDefault(req.Length, s.limits.DefaultLength),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if s.limits.MaxLength > 0 && opts.Length > s.limits.MaxLength {
		metrics.ObserveGeneration(metrics.OutcomeRejected)
		return model.GenerateResponse{}, fmt.Errorf("%w: at most %d characters", ErrLengthOutOfRange, s.limits.MaxLength)
	}

	password, err := s.generator.Generate(opts)
	if err != nil {
		if IsValidationError(err) {
			metrics.ObserveGeneration(metrics.OutcomeRejected)
		} else {
			metrics.ObserveGeneration(metrics.OutcomeFailed)
		}
		return model.GenerateResponse{}, err
	}

	s.history.Append(password)
	metrics.ObserveGeneration(metrics.OutcomeOK)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: toStrengthResponse(crypto.Evaluate(password)),
	}, nil
}

// CheckStrength scores an arbitrary password.
func (s *GeneratorService) CheckStrength(req model.StrengthRequest) model.StrengthResponse {
	report := crypto.Evaluate(req.Password)
	metrics.ObserveStrength(report.Score)
	return toStrengthResponse(report)
}

// History returns the passwords generated so far, oldest first.
func (s *GeneratorService) History() model.HistoryResponse {
	entries := s.history.Entries()
	resp := model.HistoryResponse{
		Count:   len(entries),
		Entries: make([]model.HistoryEntryResponse, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = model.HistoryEntryResponse{
			Seq:         e.Seq,
			Password:    e.Password,
			GeneratedAt: e.GeneratedAt,
		}
	}
	return resp
}

// IsValidationError reports whether err was caused by the caller's request
// rather than an internal fault.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrNoCharacterClass) ||
		errors.Is(err, crypto.ErrLengthInsufficient) ||
		errors.Is(err, ErrLengthOutOfRange)
}

func toStrengthResponse(r crypto.StrengthReport) model.StrengthResponse {
	return model.StrengthResponse{
		Score:    r.Score,
		MaxScore: crypto.MaxStrengthScore,
		Reasons:  r.Reasons,
		Estimate: model.EstimateResponse{
			Score:     r.Estimate.Score,
			Entropy:   r.Estimate.Entropy,
			CrackTime: r.Estimate.CrackTime,
		},
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
