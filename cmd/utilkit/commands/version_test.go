package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/utilkit-io/utilkit/models"
)

func TestRunVersion(t *testing.T) {
	build := models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc1234")

	t.Run("text", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, RunVersion(out, build, "text"))
		require.Equal(t, "Build version: 1.2.3\nBuild date: 2026-01-02\nBuild commit: abc1234\n", out.String())
	})

	t.Run("unstamped-fields-show-na", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, RunVersion(out, models.NewAppBuildInfo("", "", ""), "text"))
		require.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, RunVersion(out, build, "json"))
		require.JSONEq(t, `{"version":"1.2.3","build_date":"2026-01-02","build_commit":"abc1234"}`, out.String())
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunVersion(&bytes.Buffer{}, build, "yaml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "valid options")
	})
}
