package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Defaults(t *testing.T) {
	bi := Info()
	assert.Equal(t, BuildInfo{Service: "insighthub-report", Version: "dev", Commit: "none", Date: "unknown"}, bi)
	assert.Equal(t, "insighthub-report dev (commit none, built unknown)", bi.String())
}
