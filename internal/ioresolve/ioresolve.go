// Package ioresolve resolves transition pathways for ensembles of
// spin systems with concurrent workers and progress reporting.
package ioresolve

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/spinsolve/nmrpath/pkg/config"
	"github.com/spinsolve/nmrpath/pkg/method"
	"github.com/spinsolve/nmrpath/pkg/spin"
	"github.com/spinsolve/nmrpath/pkg/transition"
)

// Resolved is the pathway list of one spin system of the ensemble,
// tagged with the system's position and abundance for downstream
// averaging.
type Resolved struct {
	// SystemIndex is the 0-based position of the system in the
	// ensemble. Results are returned in ensemble order.
	SystemIndex int `json:"system_index"`

	SystemName string `json:"system_name,omitempty"`

	// Abundance of the system as a percentage.
	Abundance float64 `json:"abundance"`

	Pathways []transition.Pathway `json:"pathways"`
}

// indexed pairs a system with its ensemble position for the pipeline.
type indexed struct {
	idx int
	sys *spin.System
}

// Resolve computes transition pathways for every system of the
// ensemble against the method. Systems are processed by
// cfg.JobsNumber concurrent workers; results come back in ensemble
// order. The first resolution error cancels the remaining work.
func Resolve(
	ctx context.Context,
	cfg *config.Config,
	systems []*spin.System,
	m *method.Method,
) ([]Resolved, error) {
	if len(systems) == 0 {
		return nil, nil
	}

	jobID := uuid.NewString()
	start := time.Now()
	slog.Info("Starting ensemble resolution",
		"jobID", jobID,
		"systems", len(systems),
		"method", m.Name,
		"jobs", cfg.JobsNumber,
	)

	opts := []method.Option{method.OptMaxStates(cfg.Resolve.MaxStates)}
	if cfg.Resolve.UniverseCache {
		opts = append(opts, method.OptUniverseCache())
	}
	resolver := method.NewResolver(opts...)

	jobsNum := cfg.JobsNumber
	if jobsNum == 0 {
		jobsNum = 4
	}

	chIn := make(chan indexed)
	chOut := make(chan Resolved)

	g, gCtx := errgroup.WithContext(ctx)

	// Stage 1: feed systems into the pipeline.
	g.Go(func() error {
		defer close(chIn)
		for i, sys := range systems {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- indexed{idx: i, sys: sys}:
			}
		}
		return nil
	})

	// Stage 2: resolve with workers.
	var wg sync.WaitGroup
	for range jobsNum {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return workerResolve(gCtx, resolver, m, chIn, chOut)
		})
	}

	// Close chOut when workers done.
	go func() {
		wg.Wait()
		close(chOut)
	}()

	// Stage 3: collect results in ensemble order.
	res := make([]Resolved, len(systems))
	var totalPathways int

	g.Go(func() error {
		bar := newProgressBar(len(systems), "Resolving pathways: ")
		defer bar.Finish()

		for r := range chOut {
			res[r.SystemIndex] = r
			totalPathways += len(r.Pathways)
			bar.Increment()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dur := time.Since(start)
	slog.Info("Completed ensemble resolution",
		"jobID", jobID,
		"systems", len(systems),
		"pathways", totalPathways,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(fmt.Sprintf(
		"<em>Resolved %s pathways across %s spin systems in %s</em>",
		humanize.Comma(int64(totalPathways)),
		humanize.Comma(int64(len(systems))),
		gnfmt.TimeString(dur.Seconds()),
	))

	return res, nil
}

// workerResolve resolves systems from chIn until the channel drains
// or the context is canceled.
func workerResolve(
	ctx context.Context,
	resolver *method.Resolver,
	m *method.Method,
	chIn <-chan indexed,
	chOut chan<- Resolved,
) error {
	for job := range chIn {
		select {
		case <-ctx.Done():
			for range chIn {
			}
			return ctx.Err()
		default:
		}

		pathways, err := resolver.Resolve(job.sys, m)
		if err != nil {
			return err
		}

		r := Resolved{
			SystemIndex: job.idx,
			SystemName:  job.sys.Name,
			Abundance:   job.sys.Abundance,
			Pathways:    pathways,
		}

		select {
		case <-ctx.Done():
			for range chIn {
			}
			return ctx.Err()
		case chOut <- r:
		}
	}
	return nil
}
