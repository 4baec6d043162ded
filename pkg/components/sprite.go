package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
// Image 是整张精灵表，当前帧由 AnimationComponent.FrameRect 决定
type SpriteComponent struct {
	Image *ebiten.Image
	Tint  color.RGBA // 颜色乘数，白色表示原色
}
