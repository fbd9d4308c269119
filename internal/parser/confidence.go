package parser

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	weightAmount    = 0.30
	weightUPI       = 0.25
	weightReference = 0.20
	weightType      = 0.15
	weightMerchant  = 0.10

	maxPerturbation = 0.05
)

// RandomSource supplies values in [0, 1) for the confidence perturbation.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewRandomSource returns a source backed by the runtime's shared generator.
func NewRandomSource() RandomSource {
	return globalSource{}
}

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a reproducible source for a given seed.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// FixedSource always returns its own value. 0.5 yields no perturbation.
type FixedSource float64

func (f FixedSource) Float64() float64 { return float64(f) }

// NoPerturbation makes confidence scores exact.
const NoPerturbation = FixedSource(0.5)

// evidence is what the scorer looks at.
type evidence struct {
	amount    *decimal.Decimal
	upiID     string
	reference string
	txType    TransactionType
	merchant  string
}

// baseConfidence is the clamped weighted sum before perturbation.
func baseConfidence(ev evidence) float64 {
	score := 0.0
	if ev.amount != nil && ev.amount.IsPositive() {
		score += weightAmount
	}
	if ev.upiID != "" && strings.Contains(ev.upiID, "@") {
		score += weightUPI
	}
	if len(ev.reference) >= minReferenceLength {
		score += weightReference
	}
	if ev.txType != "" {
		score += weightType
	}
	if ev.merchant != "" {
		score += weightMerchant
	}
	return clamp(score)
}

// perturb shifts score by a uniform amount in [-0.05, 0.05].
func perturb(score float64, src RandomSource) float64 {
	delta := (src.Float64()*2 - 1) * maxPerturbation
	return clamp(score + delta)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
