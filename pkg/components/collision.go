package components

// CollisionComponent 定义实体的碰撞盒
// 碰撞盒 = 当前帧矩形放在实体位置后，四边各向内收缩 Padding
type CollisionComponent struct {
	Padding float64 // 收缩量（像素），0 表示使用完整帧矩形
}

// Box 计算实体在世界坐标下的碰撞盒
func (c *CollisionComponent) Box(pos *PositionComponent, frame Rect) Rect {
	return frame.At(pos.X, pos.Y).Inset(c.Padding)
}
