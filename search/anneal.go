package search

import (
	"math/rand"
	"sync"

	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/logscalar"
)

// BucketCount is the number of independent climb/shuffle lineages
// RunBuckets advances in parallel each round.
const BucketCount = 8

// RunBuckets runs the CLI's long-form search loop: BucketCount clones of
// g, each independently shuffled by shuffleSize random moves and then
// hill-climbed for rounds outer iterations. After every round, any
// bucket whose probability beats g's current best is adopted as the new
// g; any bucket that failed to improve on its own baseline this round
// (or is that round's designated victim, cycling one bucket per round
// the way the original visits index == y) is reset to a fresh shuffle of
// the new g, so a bucket stuck at a local optimum doesn't just sit
// there burning rounds.
//
// onMove is called, in bucket order, for every move a winning bucket
// committed; onRound is called once per outer round with g's probability
// before that round's work. Both may be nil.
func RunBuckets(g *graph.Graph, rounds int, shuffleSize int, random *rand.Rand, onMove func(MoveLog), onRound func(logscalar.Log)) {
	buckets := make([]*graph.Graph, BucketCount)
	for i := range buckets {
		buckets[i] = g.Clone()
		Shuffle(buckets[i], random, shuffleSize)
	}

	for round := 0; round < rounds; round++ {
		if onRound != nil {
			onRound(g.Probability())
		}

		logs := make([][]MoveLog, BucketCount)
		improved := make([]bool, BucketCount)

		var wg sync.WaitGroup
		for i := range buckets {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				baseline := buckets[i].Probability()
				logs[i] = Optimize(buckets[i])
				improved[i] = baseline.Less(buckets[i].Probability())
			}(i)
		}
		wg.Wait()

		victim := round % BucketCount
		for i, bucket := range buckets {
			if g.Probability().Less(bucket.Probability()) {
				g.ReplaceWith(bucket.Clone())
				if onMove != nil {
					for _, log := range logs[i] {
						onMove(log)
					}
				}
			}
			if i == victim || !improved[i] {
				buckets[i] = g.Clone()
				Shuffle(buckets[i], random, shuffleSize)
			}
		}
	}
}
