package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded levels for callers that walk them directly.
func LevelFS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels from the embedded filesystem.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewDirLevelLoader reads levels from a directory on disk, used by -level
// when the path is not one of the embedded arenas.
func NewDirLevelLoader(dir string) *LevelLoader {
	return &LevelLoader{fsys: os.DirFS(dir)}
}

// MustLoadLevels loads every arena under levels/ and panics if any fails.
func (l *LevelLoader) MustLoadLevels() []*leveldata.ArenaData {
	levels, names, err := leveldata.LoadAllLevels(l.fsys, "levels", config.Level.PixelsPerUnit)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	out := make([]*leveldata.ArenaData, 0, len(names))
	for _, name := range names {
		out = append(out, levels[name])
	}
	return out
}

// LoadLevel loads a single arena by path relative to the loader root.
func (l *LevelLoader) LoadLevel(levelPath string) (*leveldata.ArenaData, error) {
	return leveldata.LoadArena(l.fsys, filepath.ToSlash(levelPath), config.Level.PixelsPerUnit)
}
