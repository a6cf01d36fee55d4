/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package timeseries defines the time-series provider boundary of the
// summarisation core and a JSON-cache implementation of it for offline
// report runs.
package timeseries

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/carverauto/grdsumm/pkg/models"
)

// CacheProvider serves series from a JSON data cache, keyed by channel
// name. Each cached series may span the whole observation; FetchSeries
// slices out the requested epoch. Useful for report re-runs against
// previously retrieved data, in place of a live NDS connection.
type CacheProvider struct {
	channels map[string]*models.DiscreteSeries
}

// NewCacheProvider loads a data cache file.
func NewCacheProvider(path string) (*CacheProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data cache '%s': %w", path, err)
	}

	channels := make(map[string]*models.DiscreteSeries)
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data cache '%s': %w", path, err)
	}

	return &CacheProvider{channels: channels}, nil
}

// FetchSeries implements Provider. Every requested channel must be
// present in the cache and overlap the epoch, otherwise the whole fetch
// fails with ErrMissingChannel.
func (p *CacheProvider) FetchSeries(
	_ context.Context, channels []string, epoch models.Interval) (map[string]*models.DiscreteSeries, error) {
	out := make(map[string]*models.DiscreteSeries, len(channels))

	for _, name := range channels {
		full, ok := p.channels[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingChannel, name)
		}

		sliced, err := slice(full, epoch)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrMissingChannel, name, err)
		}

		out[name] = sliced
	}

	return out, nil
}

// slice cuts the samples of s whose times fall inside epoch.
func slice(s *models.DiscreteSeries, epoch models.Interval) (*models.DiscreteSeries, error) {
	if s.SamplePeriod <= 0 || s.Len() == 0 {
		return nil, errEmptyEpoch
	}

	first := int(math.Ceil((epoch.Start - s.Start) / s.SamplePeriod))
	if first < 0 {
		first = 0
	}

	last := int(math.Ceil((epoch.End - s.Start) / s.SamplePeriod))
	if last > s.Len() {
		last = s.Len()
	}

	if first >= last {
		return nil, errEmptyEpoch
	}

	return &models.DiscreteSeries{
		Start:        s.Time(first),
		SamplePeriod: s.SamplePeriod,
		Values:       s.Values[first:last],
	}, nil
}
