package systems

import (
	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
)

// ReachedFinishLine 玩家 X 在终点线上或右侧即为到达
func ReachedFinishLine(playerX, finishLineX float64) bool {
	return playerX >= finishLineX
}

// OutcomeSystem 推进终点线并判定是否到达
//
// 终点线与障碍物同速左移，不受障碍物场冻结影响；
// 到达状态每帧重新计算。
type OutcomeSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	velocity      float64
}

// NewOutcomeSystem 创建结局判定系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态
//   - velocity: 终点线水平速度（与障碍物相同，负值向左）
func NewOutcomeSystem(em *ecs.EntityManager, gs *game.GameState, velocity float64) *OutcomeSystem {
	return &OutcomeSystem{
		entityManager: em,
		gameState:     gs,
		velocity:      velocity,
	}
}

// Update 移动终点线并更新 ReachedFinishLine
func (s *OutcomeSystem) Update(deltaTime float64) {
	s.gameState.FinishLineX += s.velocity * deltaTime

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	reached := false
	for _, id := range players {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ReachedFinishLine(pos.X, s.gameState.FinishLineX) {
			reached = true
		}
	}
	s.gameState.ReachedFinishLine = reached
}
