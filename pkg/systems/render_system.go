package systems

import (
	"image/color"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Canvas 精灵绘制目标，*ebiten.Image 满足此接口
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// RenderSystem 绘制游戏世界
//
// 绘制顺序（从底到顶）：
//  1. 视差背景层（按 Depth 从远到近，每层两块贴图）
//  2. 障碍物
//  3. 玩家
//  4. 结局文字
//
// 是否绘制障碍物和玩家由调用方根据 GameState.InPlay() 决定。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	outcome       config.OutcomeConfig
	face          text.Face
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - outcome: 结局文字配置
//   - face: 结局文字字体，为 nil 时不绘制文字
func NewRenderSystem(em *ecs.EntityManager, outcome config.OutcomeConfig, face text.Face) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		outcome:       outcome,
		face:          face,
	}
}

// DrawBackground 绘制所有视差背景层
func (s *RenderSystem) DrawBackground(screen Canvas) {
	for _, id := range layersByDepth(s.entityManager) {
		layer, _ := ecs.GetComponent[*components.ParallaxLayerComponent](s.entityManager, id)
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok || sprite.Image == nil {
			continue
		}

		for _, x := range layer.TilePositions() {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(layer.Scale, layer.Scale)
			op.GeoM.Translate(x, 0)
			applyTint(op, sprite.Tint)
			screen.DrawImage(sprite.Image, op)
		}
	}
}

// DrawObstacles 绘制所有障碍物的当前帧
func (s *RenderSystem) DrawObstacles(screen Canvas) {
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](s.entityManager) {
		s.drawFrame(screen, id)
	}
}

// DrawPlayer 绘制玩家的当前帧
func (s *RenderSystem) DrawPlayer(screen Canvas) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		s.drawFrame(screen, id)
	}
}

// DrawOutcome 绘制结局文字
//
// 碰撞优先："GAME OVER" 覆盖 "YOU WON"；游戏进行中不绘制。
func (s *RenderSystem) DrawOutcome(screen *ebiten.Image, outcome game.Outcome) {
	if s.face == nil {
		return
	}

	var msg string
	var clr color.RGBA
	switch outcome {
	case game.OutcomeCollided:
		msg, clr = s.outcome.GameOverText, s.outcome.GameOverColor.RGBA()
	case game.OutcomeWon:
		msg, clr = s.outcome.WinText, s.outcome.WinColor.RGBA()
	default:
		return
	}

	bounds := screen.Bounds()
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(float64(bounds.Dx())/2, float64(bounds.Dy())/2+s.outcome.OffsetY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, s.face, op)
}

// drawFrame 绘制带动画实体的当前精灵帧
func (s *RenderSystem) drawFrame(screen Canvas, id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return
	}

	frame := sprite.Image.SubImage(anim.FrameRect.ImageRect()).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	applyTint(op, sprite.Tint)
	screen.DrawImage(frame, op)
}

// applyTint 白色不做处理，其余颜色（包括全透明）按分量相乘
func applyTint(op *ebiten.DrawImageOptions, tint color.RGBA) {
	if tint == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		return
	}
	op.ColorScale.ScaleWithColor(tint)
}
