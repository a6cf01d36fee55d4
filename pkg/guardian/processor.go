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

// Package guardian orchestrates segmentation and transition detection for
// Guardian nodes across one or more disjoint analysis epochs.
package guardian

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/grdsumm/pkg/logger"
	"github.com/carverauto/grdsumm/pkg/models"
	"github.com/carverauto/grdsumm/pkg/registry"
	"github.com/carverauto/grdsumm/pkg/segments"
	"github.com/carverauto/grdsumm/pkg/timeseries"
	"github.com/carverauto/grdsumm/pkg/transitions"
)

const defaultWorkers = 4

// Processor runs the Guardian summarisation for a report run. The
// segment store is shared across nodes; transition logs are per node.
type Processor struct {
	store    *segments.Store
	provider timeseries.Provider
	logger   logger.Logger
	workers  int

	mu   sync.Mutex
	logs map[string]*transitions.Log
}

// NewProcessor creates a processor committing into store. workers bounds
// the number of nodes processed concurrently; zero selects the default.
func NewProcessor(store *segments.Store, provider timeseries.Provider, log logger.Logger, workers int) *Processor {
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Processor{
		store:    store,
		provider: provider,
		logger:   log.WithComponent("guardian"),
		workers:  workers,
		logs:     make(map[string]*transitions.Log),
	}
}

// Run processes every configured node across the configured epochs. Nodes
// are independent and fan out under a bounded worker group; a failed node
// is logged and reported through the returned error without stopping the
// others.
func (p *Processor) Run(ctx context.Context, cfg *Config) error {
	epochs := append([]models.Interval(nil), cfg.Epochs...)
	sort.Slice(epochs, func(a, b int) bool { return epochs[a].Start < epochs[b].Start })

	var g errgroup.Group

	g.SetLimit(p.workers)

	for i := range cfg.Nodes {
		node := cfg.Nodes[i]

		g.Go(func() error {
			if err := p.ProcessNode(ctx, cfg.IFO, node, epochs); err != nil {
				p.logger.Error().Err(err).Str("node", node.Node).Msg("Node processing failed")
				return err
			}

			return nil
		})
	}

	return g.Wait()
}

// ProcessNode summarises one node over the given epochs, which must be
// disjoint and sorted by start time. Series for all epochs are fetched
// concurrently; epochs are then processed and committed in time order so
// the transition log needs no re-sorting. Each epoch commits atomically:
// a missing channel aborts the epoch before anything reaches the store.
func (p *Processor) ProcessNode(ctx context.Context, ifo string, node NodeConfig, epochs []models.Interval) error {
	reg := registry.New(node.States, node.Transitions)
	data := make([]*epochData, len(epochs))

	var g errgroup.Group

	g.SetLimit(p.workers)

	for i := range epochs {
		i := i
		g.Go(func() error {
			d, err := p.fetchEpoch(ctx, ifo, node.Node, epochs[i])
			if err != nil {
				return fmt.Errorf("node %s epoch [%v, %v): %w", node.Node, epochs[i].Start, epochs[i].End, err)
			}

			data[i] = d

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	tlog := transitions.NewLog()

	for i, d := range data {
		staged := stageEpoch(ifo, node.Node, reg, d)
		p.commitEpoch(staged, tlog)

		p.logger.Debug().
			Str("node", node.Node).
			Float64("start", epochs[i].Start).
			Float64("end", epochs[i].End).
			Int("samples", d.state.Len()).
			Msg("Epoch committed")
	}

	p.mu.Lock()
	p.logs[node.Node] = tlog
	p.mu.Unlock()

	p.logger.Info().
		Str("node", node.Node).
		Int("epochs", len(epochs)).
		Int("states", reg.Len()).
		Msg("Node summarised")

	return nil
}

// TransitionsFor returns the recorded transitions into one state of a
// processed node, in chronological order.
func (p *Processor) TransitionsFor(node string, code int32) []models.Transition {
	p.mu.Lock()
	defer p.mu.Unlock()

	tlog, ok := p.logs[node]
	if !ok {
		return nil
	}

	return tlog.ForState(code)
}

// Log returns the transition log of a processed node, or nil.
func (p *Processor) Log(node string) *transitions.Log {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.logs[node]
}

// epochData bundles the aligned series of one node for one epoch. mode
// is optional; the rest are required.
type epochData struct {
	state   *models.DiscreteSeries
	request *models.DiscreteSeries
	nominal *models.DiscreteSeries
	ok      *models.DiscreteSeries
	mode    *models.DiscreteSeries
}

func (p *Processor) fetchEpoch(ctx context.Context, ifo, node string, epoch models.Interval) (*epochData, error) {
	required := []string{
		ChannelName(ifo, node, signalState),
		ChannelName(ifo, node, signalRequest),
		ChannelName(ifo, node, signalNominal),
		ChannelName(ifo, node, signalOK),
	}

	series, err := p.provider.FetchSeries(ctx, required, epoch)
	if err != nil {
		return nil, err
	}

	for _, name := range required {
		if series[name] == nil {
			return nil, fmt.Errorf("%w: %s", timeseries.ErrMissingChannel, name)
		}
	}

	d := &epochData{
		state:   series[required[0]],
		request: series[required[1]],
		nominal: series[required[2]],
		ok:      series[required[3]],
	}

	// The MODE channel only feeds the daemon-mode segments; nodes
	// predating mode reporting simply don't have it.
	modeChannel := ChannelName(ifo, node, signalMode)

	modeSeries, err := p.provider.FetchSeries(ctx, []string{modeChannel}, epoch)
	if err != nil {
		p.logger.Warn().Str("channel", modeChannel).Msg("MODE channel unavailable, skipping mode segments")
	} else {
		d.mode = modeSeries[modeChannel]
	}

	return d, nil
}

// epochResult is the staged outcome of one epoch: everything is derived
// before anything is committed, so a failure cannot leave the store and
// the transition log mutually inconsistent.
type epochResult struct {
	segs  map[string]models.IntervalSet
	trans map[int32][]models.Transition
}

func stageEpoch(ifo, node string, reg *registry.StateRegistry, d *epochData) *epochResult {
	res := &epochResult{
		segs:  make(map[string]models.IntervalSet),
		trans: make(map[int32][]models.Transition),
	}

	res.segs[OKTag(ifo, node)] = segments.SegmentOK(d.ok)

	for _, st := range reg.States() {
		res.segs[SegmentTag(ifo, node, st.Name)] = segments.Segment(d.state, st.Code)
		res.segs[RequestTag(ifo, node, st.Name)] = segments.Segment(d.request, st.Code)
		res.segs[NominalTag(ifo, node, st.Name)] = segments.Segment(d.nominal, st.Code)
		res.trans[st.Code] = transitions.Detect(d.state, st.Code)
	}

	if d.mode != nil {
		for i, mode := range DaemonModes {
			res.segs[ModeTag(ifo, node, mode)] = segments.Segment(d.mode, int32(i))
		}
	}

	return res
}

func (p *Processor) commitEpoch(res *epochResult, tlog *transitions.Log) {
	for tag, set := range res.segs {
		p.store.Merge(tag, set)
	}

	for code, ts := range res.trans {
		tlog.Append(code, ts...)
	}
}
