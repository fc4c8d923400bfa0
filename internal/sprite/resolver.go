package sprite

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	_ "image/gif"  // 解码器注册
	_ "image/jpeg" // 解码器注册
	_ "image/png"  // 必加，否则 image: unknown format

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/davide-muzzi/cursor-follower/config"
	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

// Resolver 状态 -> 图片，解码过的图会缓存
type Resolver struct {
	profile *entity.CreatureProfile
	cache   map[entity.Action]image.Image
}

func NewResolver(profile *entity.CreatureProfile) *Resolver {
	return &Resolver{
		profile: profile,
		cache:   make(map[entity.Action]image.Image, len(entity.Actions)),
	}
}

// Resolve 找到状态对应的图
// 没配置 -> ErrMissingActionSprite，读不出来 -> ErrSpriteLoadFailure
func (r *Resolver) Resolve(a entity.Action) (image.Image, error) {
	if img, ok := r.cache[a]; ok {
		return img, nil
	}

	path, ok := r.profile.SpritePath(a)
	if !ok {
		return nil, fmt.Errorf("%w: creature %q action %q", config.ErrMissingActionSprite, r.profile.ID, a)
	}

	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	r.cache[a] = img
	return img, nil
}

// Preload 启动时把所有状态的图都读一遍，有问题在开窗之前就报错
func (r *Resolver) Preload() error {
	for _, a := range entity.Actions {
		if _, err := r.Resolve(a); err != nil {
			return err
		}
	}
	return nil
}

// Apply 换图并同步宠物尺寸
func (r *Resolver) Apply(f *entity.Follower, a entity.Action) error {
	img, err := r.Resolve(a)
	if err != nil {
		return err
	}
	f.SetSprite(img)
	return nil
}

// LoadImage 读取并解码一张图片
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrSpriteLoadFailure, path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", config.ErrSpriteLoadFailure, path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", config.ErrSpriteLoadFailure, path)
	}
	return img, nil
}

// LoadDockImage 窝的图片：文件不存在算配置错误，坏了算资源错误
func LoadDockImage(path string) (image.Image, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", config.ErrMissingDockImage, path)
	}
	return LoadImage(path)
}
