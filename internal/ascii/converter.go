package ascii

import (
	"image"
	"image/color"
	"strings"
)

// ASCII 字符集 (从深到浅)，透明像素直接输出空格
const asciiChars = "@%#*+=-:. "

// alphaCutoff 低于这个透明度当作背景
const alphaCutoff = 0x4000

// Convert 把精灵图转成字符画，用来在终端里预览
// targetWidth: 每行字符数
func Convert(img image.Image, targetWidth int) []string {
	b := img.Bounds()
	if targetWidth < 1 || b.Empty() {
		return nil
	}

	// 1. 采样步长，图比目标还窄就一像素一个字符
	stepX := b.Dx() / targetWidth
	if stepX < 1 {
		stepX = 1
	}
	// 终端字符高大约是宽的 2 倍，Y 方向步长翻倍
	stepY := stepX * 2

	// 2. 遍历像素 (从 Bounds().Min 开始，子图也能用)
	var result []string
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x += stepX {
			line.WriteByte(pixelToASCII(img.At(x, y)))
		}
		result = append(result, strings.TrimRight(line.String(), " "))
	}
	return result
}

func pixelToASCII(c color.Color) byte {
	r, g, b, a := c.RGBA()
	if a < alphaCutoff {
		return ' '
	}
	// RGBA 是预乘过的，先还原再算灰度
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	gray := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)

	idx := int(gray / 255 * float64(len(asciiChars)-1))
	if idx >= len(asciiChars) {
		idx = len(asciiChars) - 1
	}
	// 最浅的是空格，不透明像素至少给个点，轮廓才看得出来
	if idx == len(asciiChars)-1 {
		idx--
	}
	return asciiChars[idx]
}
