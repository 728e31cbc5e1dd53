package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelab/talkboard/internal/board"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "error", cfg.ReselectPolicy)
	assert.True(t, cfg.AutoReload)
	assert.Equal(t, time.Second, cfg.AutoReloadDebounce)
	assert.False(t, cfg.History.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidateReselectPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr bool
	}{
		{"error is valid", "error", false},
		{"noop is valid", "noop", false},
		{"empty means default", "", false},
		{"unknown rejected", "explode", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReselectPolicy(tt.policy)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Defaults()
	cfg.AutoReloadDebounce = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestConfig_BoardOptions(t *testing.T) {
	t.Run("noop policy is applied", func(t *testing.T) {
		cfg := Defaults()
		cfg.ReselectPolicy = "noop"

		b := board.New(cfg.BoardOptions()...)
		b.CreateCategory("one")
		_, err := b.Select("one")
		require.NoError(t, err)
		_, err = b.Select("one")
		assert.NoError(t, err)
	})

	t.Run("invalid policy keeps the default", func(t *testing.T) {
		cfg := Defaults()
		cfg.ReselectPolicy = "bogus"

		b := board.New(cfg.BoardOptions()...)
		b.CreateCategory("one")
		_, err := b.Select("one")
		require.NoError(t, err)
		_, err = b.Select("one")
		assert.ErrorIs(t, err, board.ErrAlreadyActive)
	})
}

func TestConfig_HistoryPath(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, DefaultHistoryPath(), cfg.HistoryPath())

	cfg.History.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", cfg.HistoryPath())
}
