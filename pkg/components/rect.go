package components

import "image"

// Rect 浮点轴对齐矩形（左上角 + 宽高）
// 用于精灵表帧区域和碰撞盒
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right 返回矩形右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 返回矩形下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects 检查两个矩形是否重叠
//
// 只接触边界不算重叠；宽或高为 0 的矩形仍可与严格包含它的矩形相交。
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Inset 向内收缩 pad（四边各收缩 pad），宽高最小为 0
func (r Rect) Inset(pad float64) Rect {
	w := r.Width - 2*pad
	if w < 0 {
		w = 0
	}
	h := r.Height - 2*pad
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + pad, Y: r.Y + pad, Width: w, Height: h}
}

// At 返回移动到 (x, y) 的同尺寸矩形
func (r Rect) At(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// ImageRect 转换为 image.Rectangle，用于 SubImage 取帧
func (r Rect) ImageRect() image.Rectangle {
	x0, y0 := int(r.X), int(r.Y)
	return image.Rect(x0, y0, x0+int(r.Width), y0+int(r.Height))
}
