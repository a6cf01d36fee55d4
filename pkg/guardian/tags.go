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

import "fmt"

// Tag and channel naming. The segment tag layout "<ifo>:<node> <name>"
// with the "+request" / "+nominal" stubs is relied on by downstream
// consumers and must not change.
const (
	requestStub = "+request"
	nominalStub = "+nominal"
	okName      = "OK"

	signalState   = "STATE_N"
	signalRequest = "REQUEST_N"
	signalNominal = "NOMINAL_N"
	signalMode    = "MODE"
	signalOK      = "OK"
)

// DaemonModes are the Guardian daemon execution modes, in code order:
// the MODE channel carries the index into this list.
var DaemonModes = []string{"STOP", "PAUSE", "EXEC", "MANAGED"}

// SegmentTag returns the store tag for a state's active segments.
func SegmentTag(ifo, node, state string) string {
	return fmt.Sprintf("%s:%s %s", ifo, node, state)
}

// RequestTag returns the store tag for a state's requested segments.
func RequestTag(ifo, node, state string) string {
	return SegmentTag(ifo, node, state) + requestStub
}

// NominalTag returns the store tag for a state's nominal segments.
func NominalTag(ifo, node, state string) string {
	return SegmentTag(ifo, node, state) + nominalStub
}

// OKTag returns the store tag for node liveness segments.
func OKTag(ifo, node string) string {
	return SegmentTag(ifo, node, okName)
}

// ModeTag returns the store tag for one daemon mode's segments.
func ModeTag(ifo, node, mode string) string {
	return SegmentTag(ifo, node, signalMode+" "+mode)
}

// ChannelName builds the Guardian channel name for one node signal,
// e.g. "H1:GRD-ISC_LOCK_STATE_N".
func ChannelName(ifo, node, signal string) string {
	return fmt.Sprintf("%s:GRD-%s_%s", ifo, node, signal)
}
