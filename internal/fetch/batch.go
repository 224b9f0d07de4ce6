// ABOUTME: Concurrent fetch of independent targets with a bounded worker count
// ABOUTME: Results keep request order; the first failure cancels the remaining fetches

package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Request is one independent fetch.
type Request struct {
	Target  string
	Dest    string
	Options InstallOptions
}

// FetchAll resolves every request concurrently, running at most limit
// fetches at once (limit <= 0 means unbounded). Requests sharing a
// destination and package race exactly as concurrent installer runs would.
func (f *Fetcher) FetchAll(ctx context.Context, reqs []Request, limit int) ([]InstalledPackageRef, error) {
	refs := make([]InstalledPackageRef, len(reqs))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		g.Go(func() error {
			ref, err := f.Resolve(gCtx, req.Target, req.Dest, req.Options)
			if err != nil {
				return err
			}
			refs[i] = ref
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}
