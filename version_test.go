package enterprise

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentBuild(t *testing.T) {
	build := CurrentBuild()

	assert.Equal(t, Version, build.Version)
	assert.Equal(t, runtime.Version(), build.GoVersion)
	assert.True(t, strings.HasPrefix(build.String(), "redis-enterprise-go "+Version))
	assert.Equal(t, "redis-enterprise-go/"+Version, DefaultUserAgent())
}
