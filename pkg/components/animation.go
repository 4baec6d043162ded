package components

// AnimationComponent 管理基于 spritesheet 的单行帧动画
//
// 帧沿 X 方向排列：FrameRect.X = FrameIndex * FrameRect.Width。
// FrameIndex 始终在 [0, MaxFrame] 内。
type AnimationComponent struct {
	FrameRect     Rect    // 当前帧在精灵表中的区域
	FrameIndex    int     // 当前帧索引(0-based)
	MaxFrame      int     // 最大帧索引，超过后回到 0
	FrameDuration float64 // 每帧之间的间隔(秒)
	Elapsed       float64 // 距上次换帧累计的时间(秒)
}

// Advance 推进动画计时
//
// 先按当前帧计算 FrameRect.X，再判断是否换帧；
// 所以换帧后的新帧区域在下一次 Advance 时才生效。
func (a *AnimationComponent) Advance(deltaTime float64) {
	a.Elapsed += deltaTime
	a.FrameRect.X = float64(a.FrameIndex) * a.FrameRect.Width

	if a.Elapsed >= a.FrameDuration {
		a.FrameIndex++
		if a.FrameIndex > a.MaxFrame {
			a.FrameIndex = 0
		}
		a.Elapsed = 0
	}
}
