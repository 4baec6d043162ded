package components

// PositionComponent 实体左上角的世界坐标
type PositionComponent struct {
	X float64
	Y float64
}
