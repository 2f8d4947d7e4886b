// ABOUTME: Concurrent multi-panel optimization keyed by caller-supplied panel id
// ABOUTME: Panels share nothing but the read-only catalog, so they solve in parallel

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/panel-tools/fireplan/models"
)

// OptimizeBatch solves every panel in the request concurrently. Each panel
// gets the full time limit; the limits do not stack because the solves run
// in parallel. An input error on any panel fails the whole batch, since a
// partial answer would silently drop panels.
func (o *Optimizer) OptimizeBatch(ctx context.Context, req models.OptimizeRequest, timeLimit time.Duration) (models.OptimizeResponse, error) {
	if len(req.Panels) == 0 {
		return models.OptimizeResponse{}, fmt.Errorf("request contains no panels")
	}

	var mu sync.Mutex
	results := make(map[string]models.PanelConfig, len(req.Panels))

	g, gctx := errgroup.WithContext(ctx)
	for id, input := range req.Panels {
		id, input := id, input
		g.Go(func() error {
			cfg, err := o.Optimize(gctx, input, timeLimit)
			if err != nil {
				return fmt.Errorf("panel %q: %w", id, err)
			}
			mu.Lock()
			results[id] = cfg
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.OptimizeResponse{}, err
	}

	return models.OptimizeResponse{Results: results}, nil
}
