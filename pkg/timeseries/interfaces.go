package timeseries

//go:generate mockgen -destination=mock_timeseries.go -package=timeseries github.com/carverauto/grdsumm/pkg/timeseries Provider

import (
	"context"

	"github.com/carverauto/grdsumm/pkg/models"
)

// Provider retrieves fixed-cadence integer series for a set of channel
// names over one epoch. All returned series share the epoch's sample
// grid, so they are aligned across channels. A channel that cannot be
// retrieved fails the whole fetch with ErrMissingChannel.
type Provider interface {
	FetchSeries(ctx context.Context, channels []string, epoch models.Interval) (map[string]*models.DiscreteSeries, error)
}
