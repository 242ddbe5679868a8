package sampler

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/solver"
)

// AggregateResult is the outcome of GenerateMany: the average trick
// count per legal move across every accepted sample, plus how many
// samples were actually accepted (vs. abandoned to pool exhaustion or
// rejected by Filter).
type AggregateResult struct {
	Tricks   map[card.Card]float64
	Accepted int
	Attempts int
}

// GenerateMany runs the generate/filter/solve/repeat/aggregate loop
// across a worker pool. It is convenience sugar: callers may always
// drive Generate/Filter/Solve themselves instead.
//
// Workers derive independent *rand.Rand streams from one seeded master
// source, following signalnine-darwindeck's RunBatchParallelN shape:
// one seed draw per unit of work up front, so results are reproducible
// regardless of worker scheduling.
func (s *Sampler) GenerateMany(factory solver.Factory, attempts, numWorkers int, seed int64) AggregateResult {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	type job struct{ seed int64 }
	jobs := make(chan job, attempts)
	type outcome struct {
		scores map[card.Card]int
		ok     bool
	}
	results := make(chan outcome, attempts)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rng := rand.New(rand.NewSource(j.seed))
				d, ok := s.Generate(rng)
				if !ok {
					results <- outcome{ok: false}
					continue
				}
				if !s.Filter(d) {
					s.log.Debug().Msg("sampler: deal rejected by constraint filter")
					results <- outcome{ok: false}
					continue
				}
				scores, err := s.Solve(d, factory)
				if err != nil {
					s.log.Debug().Err(err).Msg("sampler: solve failed, dropping sample")
					results <- outcome{ok: false}
					continue
				}
				results <- outcome{scores: scores, ok: true}
			}
		}()
	}

	master := rand.New(rand.NewSource(seed))
	for i := 0; i < attempts; i++ {
		jobs <- job{seed: master.Int63()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	sum := make(map[card.Card]int)
	count := make(map[card.Card]int)
	accepted := 0
	for r := range results {
		if !r.ok {
			continue
		}
		accepted++
		for c, tricks := range r.scores {
			sum[c] += tricks
			count[c]++
		}
	}

	avg := make(map[card.Card]float64, len(sum))
	for c, total := range sum {
		avg[c] = float64(total) / float64(count[c])
	}
	return AggregateResult{Tricks: avg, Accepted: accepted, Attempts: attempts}
}
