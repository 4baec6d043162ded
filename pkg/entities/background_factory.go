package entities

import (
	"fmt"
	"image/color"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
)

// NewParallaxLayer 创建一个视差背景层实体
//
// 参数:
//   - em: 实体管理器
//   - tex: 背景贴图
//   - depth: 绘制顺序，0 最先绘制（最远）
//   - speed: 滚动速度（像素/秒）
//   - scale: 绘制缩放
func NewParallaxLayer(
	em *ecs.EntityManager,
	tex *game.Texture,
	depth int,
	speed, scale float64,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tex == nil || tex.Image == nil {
		return 0, fmt.Errorf("background texture cannot be nil")
	}
	if scale <= 0 {
		return 0, fmt.Errorf("invalid background scale %.2f", scale)
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.ParallaxLayerComponent{
		Depth: depth,
		Speed: speed,
		Width: tex.Width(),
		Scale: scale,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: tex.Image,
		Tint:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	return entityID, nil
}
