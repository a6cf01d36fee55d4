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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carverauto/grdsumm/pkg/config"
	"github.com/carverauto/grdsumm/pkg/guardian"
	"github.com/carverauto/grdsumm/pkg/logger"
	"github.com/carverauto/grdsumm/pkg/models"
	"github.com/carverauto/grdsumm/pkg/registry"
	"github.com/carverauto/grdsumm/pkg/report"
	"github.com/carverauto/grdsumm/pkg/segments"
	"github.com/carverauto/grdsumm/pkg/timeseries"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/grdsumm/config.json", "Path to report config file")
	flag.Parse()

	ctx := context.Background()

	var cfg guardian.Config
	if err := config.NewConfig(nil).LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCfg := cfg.Logging
	if logCfg == nil {
		logCfg = logger.DefaultConfig()
	}

	lg, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := timeseries.NewCacheProvider(cfg.DataCache)
	if err != nil {
		return fmt.Errorf("failed to open data cache: %w", err)
	}

	store := segments.NewStore()
	proc := guardian.NewProcessor(store, provider, lg, cfg.Workers)

	if err := proc.Run(ctx, &cfg); err != nil {
		return fmt.Errorf("report run failed: %w", err)
	}

	var validity models.IntervalSet
	for _, epoch := range cfg.Epochs {
		validity = validity.Union(models.IntervalSet{epoch})
	}

	enc := json.NewEncoder(os.Stdout)

	for _, node := range cfg.Nodes {
		reg := registry.New(node.States, node.Transitions)
		summary := report.BuildSummary(store, proc.Log(node.Node), reg, cfg.IFO, node.Node, validity)

		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("failed to encode summary for node %s: %w", node.Node, err)
		}
	}

	return nil
}
