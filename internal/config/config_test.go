package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minererrors "github.com/ucp4496/data-collection-pipeline/internal/errors"
)

func TestLoad(t *testing.T) {
	t.Run("missing token fails with the credential error", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_TOKEN", "")

		cfg, err := Load()

		assert.ErrorIs(t, err, minererrors.ErrMissingCredential)
		assert.Nil(t, cfg)
	})

	t.Run("token present with defaults", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_TOKEN", "fake-token")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "fake-token", cfg.GithubToken)
		assert.Equal(t, 100, cfg.PageSize)
	})

	t.Run("page size override from environment", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_TOKEN", "fake-token")
		t.Setenv("REPO_MINER_PAGE_SIZE", "25")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 25, cfg.PageSize)
	})

	t.Run("page size out of range is rejected", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_TOKEN", "fake-token")
		t.Setenv("REPO_MINER_PAGE_SIZE", "500")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REPO_MINER_PAGE_SIZE")
	})
}
