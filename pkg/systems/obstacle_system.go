package systems

import (
	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
)

// ObstacleSystem 让障碍物匀速左移并播放各自的动画
// 障碍物滚出屏幕后不回收
type ObstacleSystem struct {
	entityManager *ecs.EntityManager
}

// NewObstacleSystem 创建障碍物系统
func NewObstacleSystem(em *ecs.EntityManager) *ObstacleSystem {
	return &ObstacleSystem{entityManager: em}
}

// Update 移动并推进所有障碍物的动画
func (s *ObstacleSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.ObstacleComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime

		if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
			anim.Advance(deltaTime)
		}
	}
}
