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

package guardian

import (
	"fmt"

	"github.com/carverauto/grdsumm/pkg/logger"
	"github.com/carverauto/grdsumm/pkg/models"
	"github.com/carverauto/grdsumm/pkg/registry"
)

// NodeConfig describes one Guardian node to summarise. States are listed
// in display order; Transitions optionally restricts the rows of the
// transition table to a subset of state codes.
type NodeConfig struct {
	Node        string           `json:"node"`
	States      []registry.State `json:"states"`
	Transitions []int32          `json:"transitions,omitempty"`
}

// Config is the configuration of one report run.
type Config struct {
	IFO       string            `json:"ifo"`
	Nodes     []NodeConfig      `json:"nodes"`
	Epochs    []models.Interval `json:"epochs"`
	Workers   int               `json:"workers,omitempty"`
	DataCache string            `json:"data_cache,omitempty"`
	Logging   *logger.Config    `json:"logging,omitempty"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.IFO == "" {
		return errMissingIFO
	}

	if len(c.Nodes) == 0 {
		return errNoNodes
	}

	for i := range c.Nodes {
		node := &c.Nodes[i]
		if node.Node == "" {
			return fmt.Errorf("%w: node %d", errMissingNodeName, i)
		}

		if len(node.States) == 0 {
			return fmt.Errorf("%w: node %s", errNoStates, node.Node)
		}
	}

	if len(c.Epochs) == 0 {
		return errNoEpochs
	}

	for _, epoch := range c.Epochs {
		if epoch.Start >= epoch.End {
			return fmt.Errorf("%w: [%v, %v)", errInvalidEpoch, epoch.Start, epoch.End)
		}
	}

	return nil
}
