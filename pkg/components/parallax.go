package components

// ParallaxLayerComponent 视差背景层
//
// 每层绘制两块贴图（Offset 和 Offset + Width*Scale），
// Offset 滚动到 -Width*Scale 时归零，保证无缝循环。
type ParallaxLayerComponent struct {
	Depth  int     // 绘制顺序，越小越靠后
	Offset float64 // 当前水平偏移（像素）
	Speed  float64 // 滚动速度（像素/秒）
	Width  float64 // 贴图原始宽度（像素）
	Scale  float64 // 绘制缩放
}

// Span 返回一块贴图在屏幕上的宽度，也是滚动周期长度
func (p *ParallaxLayerComponent) Span() float64 {
	return p.Width * p.Scale
}

// TilePositions 返回本帧两块贴图的 X 坐标
func (p *ParallaxLayerComponent) TilePositions() [2]float64 {
	return [2]float64{p.Offset, p.Offset + p.Span()}
}
