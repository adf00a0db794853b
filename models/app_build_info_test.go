package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", " ", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}

func TestAppBuildInfo_Print(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-15", "9f1c2ab")

	var buf bytes.Buffer
	info.Print(&buf)

	assert.Equal(t, "Build version: v1.2.0\nBuild date: 2026-10-15\nBuild commit: 9f1c2ab\n", buf.String())
	assert.Equal(t, "go-quick-post v1.2.0 (commit 9f1c2ab, built 2026-10-15)", info.String())
}
