package entities

import (
	"github.com/Nnorb87/DapperDasher/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestTexture 创建测试用纹理（cols x rows 网格）
func newTestTexture(width, height, cols, rows int) *game.Texture {
	return &game.Texture{
		Image:       ebiten.NewImage(width, height),
		FrameWidth:  float64(width / cols),
		FrameHeight: float64(height / rows),
	}
}

// sequenceRandom 依次返回预设值（对 n 取模），用于确定性测试
type sequenceRandom struct {
	values []int
	calls  []int // 每次调用的 n
	next   int
}

func (r *sequenceRandom) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}
