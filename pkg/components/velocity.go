package components

// VelocityComponent 实体速度（像素/秒）
// 障碍物只使用 VX，玩家只使用 VY
type VelocityComponent struct {
	VX float64
	VY float64
}
