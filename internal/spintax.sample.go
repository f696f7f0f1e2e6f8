package internal

import (
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// Sampler draws distinct random expansions without materializing the
// combination space. Each segment's option is chosen independently and
// uniformly, so the distribution over whole expansions is not globally
// uniform when option counts differ between segments.
type Sampler struct {
	intn       func(n int) int
	multiplier int
	logger     *zap.Logger
}

// NewSampler creates a sampler. A nil intn falls back to the shared
// math/rand source; a non-positive multiplier falls back to
// DefaultAttemptMultiplier.
func NewSampler(intn func(n int) int, multiplier int, logger *zap.Logger) *Sampler {
	if intn == nil {
		intn = rand.Intn
	}
	if multiplier <= 0 {
		multiplier = DefaultAttemptMultiplier
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sampler{
		intn:       intn,
		multiplier: multiplier,
		logger:     logger,
	}
}

// Sample returns up to n distinct expansions. Candidates are built one
// at a time; duplicates burn an attempt but are not returned. The loop
// stops once n distinct results exist or the attempt budget
// (multiplier*n) is spent, so it terminates even when fewer than n
// distinct combinations exist. n <= 0 yields nil.
func (s *Sampler) Sample(segments []Segment, n int) []string {
	if n <= 0 {
		return nil
	}

	budget := s.multiplier * n
	results := make([]string, 0, n)
	seen := make(map[string]struct{}, n)

	attempts := 0
	for ; attempts < budget && len(results) < n; attempts++ {
		candidate := s.one(segments)
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		results = append(results, candidate)
	}

	if len(results) < n {
		s.logger.Debug(LogMsgSampleBudget,
			zap.Int(LogFieldTarget, n),
			zap.Int(LogFieldAttempts, attempts),
			zap.Int(LogFieldResults, len(results)))
	}
	s.logger.Debug(LogMsgSampleEnd,
		zap.Int(LogFieldTarget, n),
		zap.Int(LogFieldResults, len(results)))
	return results
}

// one builds a single candidate by picking one option per segment in
// order, sampling nested syntax recursively. A zero-option segment
// (empty group input) contributes nothing.
func (s *Sampler) one(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if len(seg.Options) == 0 {
			continue
		}
		opt := seg.Options[0]
		if len(seg.Options) > 1 {
			opt = seg.Options[s.intn(len(seg.Options))]
		}
		if ContainsSpin(opt) {
			sub := NewScanner(opt, s.logger).Scan()
			sb.WriteString(s.one(sub))
			continue
		}
		sb.WriteString(opt)
	}
	return sb.String()
}
