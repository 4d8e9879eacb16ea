package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menusurface/internal/surface"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.False(t, cfg.Surface.QuickOpen)
	assert.Equal(t, "top_start", cfg.Surface.AnchorCorner)

	corner, err := cfg.Surface.Corner()
	require.NoError(t, err)
	assert.Equal(t, surface.CornerTopStart, corner)
	assert.Equal(t, surface.Margin{}, cfg.Surface.Margin())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.Surface.QuickOpen = true
	cfg.Surface.AnchorCorner = "bottom_end"
	cfg.Surface.MarginTop = 4
	cfg.Surface.MarginLeft = 8
	cfg.Surface.RTL = true
	cfg.UISettings.ShowStatusBar = false

	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	corner, err := loaded.Surface.Corner()
	require.NoError(t, err)
	assert.Equal(t, surface.CornerBottomEnd, corner)
	assert.Equal(t, surface.Margin{Top: 4, Left: 8}, loaded.Surface.Margin())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := &configService{filePath: filepath.Join(t.TempDir(), "absent.toml")}

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[surface]\nquick_open = true\n"), 0644))

	cs := &configService{filePath: path}
	cfg, err := cs.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Surface.QuickOpen)
	assert.Equal(t, "top_start", cfg.Surface.AnchorCorner)
	assert.True(t, cfg.UISettings.ShowStatusBar)
}

func TestLoadRejectsUnknownCorner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[surface]\nanchor_corner = \"sideways\"\n"), 0644))

	cs := &configService{filePath: path}
	_, err := cs.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anchor_corner")
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cs := &configService{filePath: "unused"}
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
