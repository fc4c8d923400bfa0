// spritecheck 检查精灵表：每个状态都要有图、图要能读，顺便在终端里预览
//
//	spritecheck [-config config.json] [-width 40] [-init]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davide-muzzi/cursor-follower/config"
	"github.com/davide-muzzi/cursor-follower/internal/ascii"
	"github.com/davide-muzzi/cursor-follower/internal/entity"
	"github.com/davide-muzzi/cursor-follower/internal/sprite"
)

func main() {
	cfgPath := flag.String("config", config.DefaultFile, "settings file")
	width := flag.Int("width", 40, "preview width in characters")
	initCfg := flag.Bool("init", false, "write a default settings file if it does not exist")
	flag.Parse()

	if *initCfg {
		if err := writeDefault(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	if err := check(*cfgPath, *width); err != nil {
		log.Fatal(err)
	}
}

func writeDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		log.Printf("%s already exists, leaving it alone", path)
		return nil
	}
	if err := config.Save(config.NewDefault(), path); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}

func check(cfgPath string, width int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	sprites, err := config.LoadSpriteMap(cfg.SpritesPath)
	if err != nil {
		return err
	}
	profile, err := sprites.Creature(cfg.Creature)
	if err != nil {
		return err
	}

	r := sprite.NewResolver(profile)
	for _, a := range entity.Actions {
		img, err := r.Resolve(a)
		if err != nil {
			return err
		}
		path, _ := profile.SpritePath(a)
		b := img.Bounds()
		fmt.Printf("== %s/%s  %s  %dx%d\n", profile.ID, a, path, b.Dx(), b.Dy())
		for _, line := range ascii.Convert(img, width) {
			fmt.Println(line)
		}
	}

	dock, err := sprite.LoadDockImage(cfg.DockImagePath)
	if err != nil {
		return err
	}
	b := dock.Bounds()
	fmt.Printf("== dock  %s  %dx%d\n", cfg.DockImagePath, b.Dx(), b.Dy())
	fmt.Printf("ok: %d creature(s) in %s\n", len(sprites.IDs()), cfg.SpritesPath)
	return nil
}
