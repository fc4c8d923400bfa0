package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

// creatureEntry sprites.json 里每只宠物的内容
//
//	{ "cat": { "sprites": { "following": "sprites/cat.png", ... } } }
type creatureEntry struct {
	Sprites map[string]string `json:"sprites" yaml:"sprites"`
}

// SpriteMap 宠物 id -> 配置
type SpriteMap map[string]*entity.CreatureProfile

// LoadSpriteMap 读取精灵表 (.json / .yaml / .yml)
// 图片的相对路径按精灵表所在目录解析
func LoadSpriteMap(path string) (SpriteMap, error) {
	// 1. 读文件
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSpriteMap, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfiguration, path, err)
	}

	// 2. 按扩展名解析
	raw := map[string]creatureEntry{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSpriteMap, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s has no creatures", ErrMalformedSpriteMap, path)
	}

	// 3. 整理成 CreatureProfile
	base := filepath.Dir(path)
	m := make(SpriteMap, len(raw))
	for id, entry := range raw {
		if len(entry.Sprites) == 0 {
			return nil, fmt.Errorf("%w: creature %q has no sprites", ErrMalformedSpriteMap, id)
		}
		sprites := make(map[string]string, len(entry.Sprites))
		for action, p := range entry.Sprites {
			if p != "" && !filepath.IsAbs(p) {
				p = filepath.Join(base, p)
			}
			sprites[action] = p
		}
		m[id] = &entity.CreatureProfile{ID: id, Sprites: sprites}
	}
	return m, nil
}

// Creature 取出某只宠物
func (m SpriteMap) Creature(id string) (*entity.CreatureProfile, error) {
	p, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrMissingCreature, id, strings.Join(m.IDs(), ", "))
	}
	return p, nil
}

// IDs 所有宠物 id，排好序
func (m SpriteMap) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
