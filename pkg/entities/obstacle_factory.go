package entities

import (
	"fmt"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
)

// RandomSource 障碍物生成使用的随机数来源
// *rand.Rand（math/rand/v2）满足此接口
type RandomSource interface {
	// IntN 返回 [0, n) 内的随机整数
	IntN(n int) int
}

// ObstacleField 一次性生成的障碍物序列
//
// 障碍物从不销毁或回收，滚出左边界后继续存在。
type ObstacleField struct {
	// IDs 按生成顺序（X 从小到大）排列的障碍物实体
	IDs []ecs.EntityID

	// FinishLineX 终点线初始位置，即最后一个障碍物的生成 X
	FinishLineX float64
}

// NewObstacleField 生成全部障碍物（星云）
//
// 第一个障碍物位于窗口右边缘外（X = windowWidth），
// 之后每个间隔 [MinGap, MaxGap]（含两端）的随机距离；
// 颜色从调色板中等概率抽取。
//
// 参数:
//   - em: 实体管理器
//   - tex: 星云精灵表
//   - cfg: 障碍物配置
//   - windowWidth, windowHeight: 窗口逻辑尺寸
//   - rng: 随机数来源
func NewObstacleField(
	em *ecs.EntityManager,
	tex *game.Texture,
	cfg config.ObstacleConfig,
	windowWidth, windowHeight float64,
	rng RandomSource,
) (*ObstacleField, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if tex == nil || tex.Image == nil {
		return nil, fmt.Errorf("obstacle texture cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if cfg.Count <= 0 || len(cfg.Palette) == 0 || cfg.MinGap > cfg.MaxGap {
		return nil, fmt.Errorf("invalid obstacle config: count=%d palette=%d gap=[%d, %d]",
			cfg.Count, len(cfg.Palette), cfg.MinGap, cfg.MaxGap)
	}

	frame := components.Rect{Width: tex.FrameWidth, Height: tex.FrameHeight}
	field := &ObstacleField{IDs: make([]ecs.EntityID, 0, cfg.Count)}

	offset := 0
	for i := 0; i < cfg.Count; i++ {
		x := windowWidth + float64(offset)

		entityID := em.CreateEntity()
		ecs.AddComponent(em, entityID, &components.ObstacleComponent{})
		ecs.AddComponent(em, entityID, &components.PositionComponent{
			X: x,
			Y: windowHeight - frame.Height,
		})
		ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: cfg.Velocity})
		ecs.AddComponent(em, entityID, &components.AnimationComponent{
			FrameRect:     frame,
			MaxFrame:      cfg.MaxFrame,
			FrameDuration: cfg.FrameDuration,
		})
		ecs.AddComponent(em, entityID, &components.SpriteComponent{
			Image: tex.Image,
			Tint:  cfg.Palette[rng.IntN(len(cfg.Palette))].RGBA(),
		})
		ecs.AddComponent(em, entityID, &components.CollisionComponent{Padding: cfg.Padding})

		field.IDs = append(field.IDs, entityID)
		field.FinishLineX = x

		offset += cfg.MinGap + rng.IntN(cfg.MaxGap-cfg.MinGap+1)
	}

	return field, nil
}

// Len 返回障碍物数量
func (f *ObstacleField) Len() int {
	return len(f.IDs)
}
