package guardian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Downstream consumers key on these strings; they must not drift.
func TestTagNaming(t *testing.T) {
	assert.Equal(t, "H1:ISC_LOCK LOCKED", SegmentTag("H1", "ISC_LOCK", "LOCKED"))
	assert.Equal(t, "H1:ISC_LOCK LOCKED+request", RequestTag("H1", "ISC_LOCK", "LOCKED"))
	assert.Equal(t, "H1:ISC_LOCK LOCKED+nominal", NominalTag("H1", "ISC_LOCK", "LOCKED"))
	assert.Equal(t, "H1:ISC_LOCK OK", OKTag("H1", "ISC_LOCK"))
	assert.Equal(t, "H1:ISC_LOCK MODE EXEC", ModeTag("H1", "ISC_LOCK", "EXEC"))
}

func TestChannelNaming(t *testing.T) {
	assert.Equal(t, "H1:GRD-ISC_LOCK_STATE_N", ChannelName("H1", "ISC_LOCK", signalState))
	assert.Equal(t, "L1:GRD-ALS_XARM_REQUEST_N", ChannelName("L1", "ALS_XARM", signalRequest))
	assert.Equal(t, "H1:GRD-ISC_LOCK_NOMINAL_N", ChannelName("H1", "ISC_LOCK", signalNominal))
	assert.Equal(t, "H1:GRD-ISC_LOCK_OK", ChannelName("H1", "ISC_LOCK", signalOK))
	assert.Equal(t, "H1:GRD-ISC_LOCK_MODE", ChannelName("H1", "ISC_LOCK", signalMode))
}
