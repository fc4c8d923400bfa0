package config

import (
	"errors"
	"fmt"
)

// 只有两类错误，都是启动时的静态配置问题，出现就直接退出
var (
	// ErrConfiguration 配置不对：文件没有、格式坏了、缺 key
	ErrConfiguration = errors.New("configuration error")
	// ErrResourceLoad 配置里写了图片，但图片读不出来
	ErrResourceLoad = errors.New("resource load error")
)

// 具体的错误，都包着上面两类，用 errors.Is 判断
var (
	ErrMissingSpriteMap    = fmt.Errorf("%w: sprite map not found", ErrConfiguration)
	ErrMalformedSpriteMap  = fmt.Errorf("%w: malformed sprite map", ErrConfiguration)
	ErrMissingCreature     = fmt.Errorf("%w: creature not found in sprite map", ErrConfiguration)
	ErrMissingActionSprite = fmt.Errorf("%w: no sprite for action", ErrConfiguration)
	ErrMissingDockImage    = fmt.Errorf("%w: idle zone image not found", ErrConfiguration)
	ErrInvalidSetting      = fmt.Errorf("%w: invalid setting", ErrConfiguration)

	ErrSpriteLoadFailure = fmt.Errorf("%w: cannot load sprite", ErrResourceLoad)
)
