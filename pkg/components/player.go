package components

// PlayerComponent 标识玩家实体
type PlayerComponent struct {
	OnGround bool // 本帧结束时是否着地
}
