package search

import (
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/moveset"
)

// MoveKind records why a MoveLog entry was committed.
type MoveKind int

const (
	// MoveKindClimbing marks a move Optimize accepted for raising the
	// posterior.
	MoveKindClimbing MoveKind = iota
	// MoveKindRandom marks a move Shuffle accepted unconditionally, for
	// diversification between climbing passes.
	MoveKindRandom
)

// String renders the kind the way moves.log records it.
func (k MoveKind) String() string {
	switch k {
	case MoveKindClimbing:
		return "Climbing"
	case MoveKindRandom:
		return "Random"
	default:
		return "Unknown"
	}
}

// MoveLog records one committed move and the posterior it produced.
type MoveLog struct {
	Move        moveset.Move
	Probability logscalar.Log
	Kind        MoveKind
}

type candidate struct {
	move        moveset.Move
	probability logscalar.Log
}

// Optimize runs one greedy hill-climbing pass over g: every candidate
// move GenerateMoves proposes is validated and scored concurrently (this
// is the one stage of the search loop that parallelises cleanly, since
// scoring a candidate never touches g itself), then the improving ones
// are re-validated and committed one at a time, highest-scoring first,
// recomputing the Guide after every commit since each accepted move
// changes which later candidates are still valid or still improving.
func Optimize(g *graph.Graph) []MoveLog {
	baseline := g.Probability()
	guide := moveset.NewGuide(g)
	moves := moveset.GenerateMoves(g)

	var mu sync.Mutex
	var candidates []candidate
	var group errgroup.Group
	for _, m := range moves {
		m := m
		group.Go(func() error {
			if !m.Valid(g, guide) {
				return nil
			}
			probability := mutated(g, m, guide).Probability()
			if baseline.Less(probability) {
				mu.Lock()
				candidates = append(candidates, candidate{move: m, probability: probability})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[j].probability.Less(candidates[i].probability)
	})

	var logs []MoveLog
	for _, c := range candidates {
		if !c.move.Valid(g, guide) {
			continue
		}
		newGraph := mutated(g, c.move, guide)
		if g.Probability().Less(newGraph.Probability()) {
			g.ReplaceWith(newGraph)
			guide = moveset.NewGuide(g)
			logs = append(logs, MoveLog{Move: c.move, Probability: g.Probability(), Kind: MoveKindClimbing})
		}
	}

	return logs
}

// Shuffle applies count uniformly-random valid moves to g in sequence,
// unconditionally, regardless of whether each one raises or lowers the
// posterior — escaping local optima Optimize alone would get stuck in.
func Shuffle(g *graph.Graph, random *rand.Rand, count int) []MoveLog {
	logs := make([]MoveLog, 0, count)
	for i := 0; i < count; i++ {
		guide := moveset.NewGuide(g)
		m := moveset.GenerateMove(g, random)
		for !m.Valid(g, guide) {
			m = moveset.GenerateMove(g, random)
		}
		g.ReplaceWith(mutated(g, m, guide))
		logs = append(logs, MoveLog{Move: m, Probability: g.Probability(), Kind: MoveKindRandom})
	}
	return logs
}
