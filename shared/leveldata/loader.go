package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	groupBlocks    = "Blocks"
	groupElevators = "Elevators"
	groupSpawns    = "PlayerSpawn"
)

var ErrNoSpawn = errors.New("no player spawn points defined in map")

// LoadArena parses a TMX file from fsys. Pixel coordinates are divided by
// pixelsPerUnit.
func LoadArena(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*ArenaData, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixels per unit must be positive, got %v", tmxPath, pixelsPerUnit)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / pixelsPerUnit,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / pixelsPerUnit,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupBlocks:
			for _, o := range og.Objects {
				b, err := blockRect(o, pixelsPerUnit)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				data.Blocks = append(data.Blocks, b)
			}
		case groupElevators:
			for _, o := range og.Objects {
				e, err := elevatorRect(o, pixelsPerUnit)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				data.Elevators = append(data.Elevators, e)
			}
		case groupSpawns:
			for _, o := range og.Objects {
				yaw, err := floatProperty(o, "yaw", 0)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				elev, err := floatProperty(o, "elevation", 0)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:     o.X / pixelsPerUnit,
					Y:     elev,
					Z:     o.Y / pixelsPerUnit,
					Yaw:   yaw,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(data.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, pixelsPerUnit float64) (map[string]*ArenaData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadArena(fsys, path, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func blockRect(o *tiled.Object, ppu float64) (BlockRect, error) {
	minY, err := floatProperty(o, "minY", 0)
	if err != nil {
		return BlockRect{}, err
	}
	maxY, err := floatProperty(o, "maxY", 1)
	if err != nil {
		return BlockRect{}, err
	}
	if maxY <= minY {
		return BlockRect{}, fmt.Errorf("object %d: maxY %v must be above minY %v", o.ID, maxY, minY)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return BlockRect{}, fmt.Errorf("object %d: block needs a positive size", o.ID)
	}
	return BlockRect{
		X:    o.X / ppu,
		Z:    o.Y / ppu,
		W:    o.Width / ppu,
		D:    o.Height / ppu,
		MinY: minY,
		MaxY: maxY,
	}, nil
}

func elevatorRect(o *tiled.Object, ppu float64) (ElevatorRect, error) {
	b, err := blockRect(o, ppu)
	if err != nil {
		return ElevatorRect{}, err
	}
	travel, err := floatProperty(o, "travel", 2)
	if err != nil {
		return ElevatorRect{}, err
	}
	period, err := floatProperty(o, "period", 4)
	if err != nil {
		return ElevatorRect{}, err
	}
	if period <= 0 {
		return ElevatorRect{}, fmt.Errorf("object %d: period must be positive, got %v", o.ID, period)
	}
	return ElevatorRect{BlockRect: b, Travel: travel, Period: period}, nil
}

// floatProperty reads a numeric custom property, returning def when unset.
func floatProperty(o *tiled.Object, name string, def float64) (float64, error) {
	raw := o.Properties.GetString(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("object %d: property %s: %w", o.ID, name, err)
	}
	return v, nil
}
