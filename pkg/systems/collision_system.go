package systems

import (
	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
)

// CollisionSystem 检测玩家与障碍物的碰撞
//
// 障碍物使用收缩后的碰撞盒（CollisionComponent.Padding），
// 玩家使用完整帧矩形。任意一次重叠都会把 GameState.Collided 置为 true。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 检测本帧碰撞
//
// 返回:
//   - bool: 本帧是否发生了碰撞
func (s *CollisionSystem) Update() bool {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	obstacles := ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.PositionComponent](s.entityManager)

	hit := false
	for _, playerID := range players {
		playerBox, ok := s.boundingBox(playerID)
		if !ok {
			continue
		}

		for _, obstacleID := range obstacles {
			obstacleBox, ok := s.boundingBox(obstacleID)
			if !ok {
				continue
			}
			if playerBox.Intersects(obstacleBox) {
				hit = true
			}
		}
	}

	if hit {
		s.gameState.MarkCollided()
	}
	return hit
}

// boundingBox 计算实体在世界坐标下的碰撞盒
func (s *CollisionSystem) boundingBox(id ecs.EntityID) (components.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return components.Rect{}, false
	}
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		return components.Rect{}, false
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		col = &components.CollisionComponent{}
	}
	return col.Box(pos, anim.FrameRect), true
}
