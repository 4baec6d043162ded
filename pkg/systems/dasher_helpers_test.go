package systems

import (
	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
)

const (
	testGroundY   = 380.0
	testFrameTime = 1.0 / 60.0
)

// addTestPlayer 创建一个站在地面上的 128x128 玩家
func addTestPlayer(em *ecs.EntityManager, x float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PlayerComponent{OnGround: true})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: testGroundY - 128})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		FrameRect:     components.Rect{Width: 128, Height: 128},
		MaxFrame:      5,
		FrameDuration: 1.0 / 12.0,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{})
	return id
}

// addTestObstacle 创建一个 100x100、收缩 pad 的障碍物
func addTestObstacle(em *ecs.EntityManager, x, y, vx, pad float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ObstacleComponent{})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		FrameRect:     components.Rect{Width: 100, Height: 100},
		MaxFrame:      7,
		FrameDuration: 1.0 / 16.0,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Padding: pad})
	return id
}
