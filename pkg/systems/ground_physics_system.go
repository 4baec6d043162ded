package systems

import (
	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
)

// IsOnGround 判断精灵底边是否触地（含恰好接触）
//
// 参数:
//   - y: 精灵左上角 Y
//   - height: 精灵高度
//   - groundY: 地面 Y（窗口高度）
func IsOnGround(y, height, groundY float64) bool {
	return y >= groundY-height
}

// GroundPhysicsSystem 处理玩家的重力、跳跃和着地动画
//
// 每帧流程：
//  1. 着地时竖直速度归零，否则累加重力
//  2. 着地且本帧按下跳跃键时叠加起跳速度
//  3. 按速度移动；下落穿过地面时贴回地面
//  4. 仅在着地时推进跑步动画（空中保持当前帧）
type GroundPhysicsSystem struct {
	entityManager *ecs.EntityManager
	gravity       float64
	jumpVelocity  float64
	groundY       float64
}

// NewGroundPhysicsSystem 创建地面物理系统
//
// 参数:
//   - em: 实体管理器
//   - gravity: 重力加速度（像素/秒²，正值向下）
//   - jumpVelocity: 起跳速度（像素/秒，负值向上）
//   - groundY: 地面 Y 坐标
func NewGroundPhysicsSystem(em *ecs.EntityManager, gravity, jumpVelocity, groundY float64) *GroundPhysicsSystem {
	return &GroundPhysicsSystem{
		entityManager: em,
		gravity:       gravity,
		jumpVelocity:  jumpVelocity,
		groundY:       groundY,
	}
}

// Update 更新所有玩家实体
//
// 参数:
//   - deltaTime: 帧间隔（秒）
//   - jumpPressed: 本帧是否刚按下跳跃键（边沿触发）
func (s *GroundPhysicsSystem) Update(deltaTime float64, jumpPressed bool) {
	entities := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		anim, hasAnim := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)

		height := 0.0
		if hasAnim {
			height = anim.FrameRect.Height
		}

		onGround := IsOnGround(pos.Y, height, s.groundY)
		if onGround {
			vel.VY = 0
		} else {
			vel.VY += s.gravity * deltaTime
		}

		// 只有站在地面上才能起跳，空中按键无效
		if jumpPressed && onGround {
			vel.VY += s.jumpVelocity
		}

		pos.Y += vel.VY * deltaTime

		// 下落一步越过地面时贴回地面，避免停在地面以下
		if vel.VY > 0 && pos.Y > s.groundY-height {
			pos.Y = s.groundY - height
		}

		player.OnGround = IsOnGround(pos.Y, height, s.groundY)
		if player.OnGround && hasAnim {
			anim.Advance(deltaTime)
		}
	}
}
