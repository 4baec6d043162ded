package entities

import (
	"fmt"
	"image/color"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
)

// NewPlayerEntity 创建玩家（Scarfy）实体
//
// 玩家水平居中、站在地面上（窗口底边），速度为 0。
//
// 参数:
//   - em: 实体管理器
//   - tex: 玩家精灵表（单行，列数来自纹理清单）
//   - cfg: 玩家配置
//   - windowWidth, windowHeight: 窗口逻辑尺寸，windowHeight 即地面 Y
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数无效时返回错误
func NewPlayerEntity(
	em *ecs.EntityManager,
	tex *game.Texture,
	cfg config.PlayerConfig,
	windowWidth, windowHeight float64,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tex == nil || tex.Image == nil {
		return 0, fmt.Errorf("player texture cannot be nil")
	}

	frame := components.Rect{Width: tex.FrameWidth, Height: tex.FrameHeight}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PlayerComponent{OnGround: true})
	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: windowWidth/2 - frame.Width/2,
		Y: windowHeight - frame.Height,
	})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.AnimationComponent{
		FrameRect:     frame,
		MaxFrame:      cfg.MaxFrame,
		FrameDuration: cfg.FrameDuration,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: tex.Image,
		Tint:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	// 玩家碰撞盒不收缩
	ecs.AddComponent(em, entityID, &components.CollisionComponent{})

	return entityID, nil
}
