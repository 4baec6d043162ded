package scenes

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

const frameTime = 1.0 / 60.0

// scriptedInput 在指定帧返回跳跃
type scriptedInput struct {
	frame int
	jumps map[int]bool
}

func (s *scriptedInput) JumpPressed() bool {
	pressed := s.jumps[s.frame]
	s.frame++
	return pressed
}

// zeroRandom 总是返回 0：最小间距、调色板第一种颜色
type zeroRandom struct{}

func (zeroRandom) IntN(int) int { return 0 }

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 60, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// newTestScene 使用默认配置和内存纹理创建场景
func newTestScene(t *testing.T, cfg *config.GameConfig, input InputSource) *GameScene {
	t.Helper()

	fsys := fstest.MapFS{
		"textures/scarfy.png":                &fstest.MapFile{Data: encodePNG(t, 768, 128)},
		"textures/12_nebula_spritesheet.png": &fstest.MapFile{Data: encodePNG(t, 800, 800)},
		"textures/far-buildings.png":         &fstest.MapFile{Data: encodePNG(t, 256, 192)},
		"textures/back-buildings.png":        &fstest.MapFile{Data: encodePNG(t, 256, 192)},
		"textures/foreground.png":            &fstest.MapFile{Data: encodePNG(t, 352, 192)},
	}

	rm := game.NewResourceManager(fsys, nil)
	if err := rm.LoadTextures(cfg.Textures); err != nil {
		t.Fatalf("failed to load textures: %v", err)
	}
	t.Cleanup(rm.UnloadAll)

	if input == nil {
		input = &scriptedInput{}
	}
	scene, err := NewGameScene(rm, cfg, input, zeroRandom{}, nil)
	if err != nil {
		t.Fatalf("NewGameScene failed: %v", err)
	}
	return scene
}

func playerPosition(t *testing.T, s *GameScene) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager(), s.PlayerID())
	if !ok {
		t.Fatal("player has no position")
	}
	return pos
}

func TestNewGameScene_InitialState(t *testing.T) {
	scene := newTestScene(t, config.DefaultGameConfig(), nil)

	pos := playerPosition(t, scene)
	if pos.X != 192 || pos.Y != 252 {
		t.Errorf("Expected player at (192, 252), got (%v, %v)", pos.X, pos.Y)
	}

	if scene.Obstacles().Len() != 30 {
		t.Errorf("Expected 30 obstacles, got %d", scene.Obstacles().Len())
	}

	// 30 个障碍物，最小间距 300：512 + 29*300
	if fl := scene.GameState().FinishLineX; fl != 9212 {
		t.Errorf("Expected finish line at 9212, got %v", fl)
	}

	layers := ecs.GetEntitiesWith1[*components.ParallaxLayerComponent](scene.EntityManager())
	if len(layers) != 3 {
		t.Errorf("Expected 3 background layers, got %d", len(layers))
	}

	if scene.GameState().Outcome() != game.OutcomePlaying {
		t.Errorf("Expected outcome playing, got %v", scene.GameState().Outcome())
	}
}

func TestNewGameScene_MissingTexture(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rm := game.NewResourceManager(fstest.MapFS{}, nil)

	if _, err := NewGameScene(rm, cfg, &scriptedInput{}, zeroRandom{}, nil); err == nil {
		t.Error("Expected error when textures are not loaded")
	}
}

func TestGameScene_JumpAndLand(t *testing.T) {
	input := &scriptedInput{jumps: map[int]bool{0: true}}
	scene := newTestScene(t, config.DefaultGameConfig(), input)

	for i := 0; i < 30; i++ {
		scene.Update(frameTime)
	}
	if pos := playerPosition(t, scene); pos.Y >= 252 {
		t.Errorf("Expected player airborne after jump, got Y %v", pos.Y)
	}

	for i := 0; i < 60; i++ {
		scene.Update(frameTime)
	}
	if pos := playerPosition(t, scene); pos.Y != 252 {
		t.Errorf("Expected player back on ground at Y 252, got %v", pos.Y)
	}
}

func TestGameScene_CollisionFreezesObstacles(t *testing.T) {
	scene := newTestScene(t, config.DefaultGameConfig(), nil)

	// 第一个障碍物约 1 秒后撞上站着不动的玩家
	for i := 0; i < 120 && !scene.GameState().Collided; i++ {
		scene.Update(frameTime)
	}
	if !scene.GameState().Collided {
		t.Fatal("Expected a collision within two seconds")
	}
	if scene.GameState().Outcome() != game.OutcomeCollided {
		t.Errorf("Expected outcome collided, got %v", scene.GameState().Outcome())
	}

	first := scene.Obstacles().IDs[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](scene.EntityManager(), first)
	frozenX := pos.X
	finishBefore := scene.GameState().FinishLineX

	for i := 0; i < 30; i++ {
		scene.Update(frameTime)
	}

	if pos.X != frozenX {
		t.Errorf("Expected obstacles frozen at %v after collision, got %v", frozenX, pos.X)
	}
	// 终点线不受冻结影响
	if scene.GameState().FinishLineX >= finishBefore {
		t.Errorf("Expected finish line to keep moving, got %v (was %v)", scene.GameState().FinishLineX, finishBefore)
	}
	if !scene.GameState().Collided {
		t.Error("Expected Collided to stay true")
	}
}

func TestGameScene_WinWhenPassingLastObstacle(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.Count = 1
	cfg.Player.Gravity = 0
	scene := newTestScene(t, cfg, nil)

	// 无重力时把玩家放到障碍物上方，永远不会相撞
	playerPosition(t, scene).Y = 0

	for i := 0; i < 120; i++ {
		scene.Update(frameTime)
	}

	if scene.GameState().Collided {
		t.Fatal("Expected no collision while floating above obstacles")
	}
	if !scene.GameState().ReachedFinishLine {
		t.Errorf("Expected finish line reached, finish X %v", scene.GameState().FinishLineX)
	}
	if scene.GameState().Outcome() != game.OutcomeWon {
		t.Errorf("Expected outcome won, got %v", scene.GameState().Outcome())
	}
}

// countingCanvas 统计 DrawImage 调用次数
type countingCanvas struct {
	draws int
}

func (c *countingCanvas) DrawImage(*ebiten.Image, *ebiten.DrawImageOptions) {
	c.draws++
}

func countWorldDraws(s *GameScene) int {
	canvas := &countingCanvas{}
	s.drawWorld(canvas)
	return canvas.draws
}

func TestGameScene_FieldHiddenAfterCollision(t *testing.T) {
	scene := newTestScene(t, config.DefaultGameConfig(), nil)
	screen := ebiten.NewImage(512, 380)

	// 3 层背景各 2 块 + 30 个障碍物 + 玩家
	const backgroundDraws = 6
	const fullDraws = backgroundDraws + 30 + 1

	scene.Update(frameTime)
	if !scene.fieldVisible {
		t.Fatal("Expected field visible while playing")
	}
	if got := countWorldDraws(scene); got != fullDraws {
		t.Errorf("Expected %d draws while playing, got %d", fullDraws, got)
	}

	for i := 0; i < 120 && !scene.GameState().Collided; i++ {
		scene.Update(frameTime)
	}
	if !scene.GameState().Collided {
		t.Fatal("Expected a collision within two seconds")
	}

	// 撞上的那一帧仍然绘制
	if !scene.fieldVisible {
		t.Error("Expected field still visible on the collision frame")
	}

	scene.Update(frameTime)
	if scene.fieldVisible {
		t.Fatal("Expected field hidden after collision")
	}
	if got := countWorldDraws(scene); got != backgroundDraws {
		t.Errorf("Expected only %d background draws after collision, got %d", backgroundDraws, got)
	}
	scene.Draw(screen)

	// 越过终点线后障碍物场恢复
	scene.GameState().FinishLineX = 0
	scene.Update(frameTime)
	if !scene.GameState().ReachedFinishLine {
		t.Fatal("Expected finish line reached")
	}
	scene.Update(frameTime)
	if !scene.fieldVisible {
		t.Fatal("Expected field visible again once the finish line is reached")
	}
	if got := countWorldDraws(scene); got != fullDraws {
		t.Errorf("Expected %d draws after reaching the finish line, got %d", fullDraws, got)
	}
	if scene.GameState().Outcome() != game.OutcomeCollided {
		t.Errorf("Expected collision to keep priority, got %v", scene.GameState().Outcome())
	}
	scene.Draw(screen)
}
