package scenes

import (
	"fmt"
	"image/color"

	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
	"github.com/Nnorb87/DapperDasher/pkg/entities"
	"github.com/Nnorb87/DapperDasher/pkg/game"
	"github.com/Nnorb87/DapperDasher/pkg/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 唯一的游戏场景
//
// 持有实体管理器、所有系统和 GameState。每帧流程：
//  1. 视差背景滚动
//  2. 玩家重力、跳跃和跑步动画
//  3. 障碍物滚动、动画和碰撞检测（仅在 GameState.InPlay() 时）
//  4. 终点线推进与到达判定
//
// 没有重开或自动退出，结局文字一直显示到关闭窗口。
type GameScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.GameConfig
	input           InputSource
	logger          *log.Logger

	entityManager *ecs.EntityManager
	gameState     *game.GameState

	playerID  ecs.EntityID
	obstacles *entities.ObstacleField

	parallaxSystem  *systems.ParallaxSystem
	physicsSystem   *systems.GroundPhysicsSystem
	obstacleSystem  *systems.ObstacleSystem
	collisionSystem *systems.CollisionSystem
	outcomeSystem   *systems.OutcomeSystem
	renderSystem    *systems.RenderSystem

	// fieldVisible 本帧障碍物和玩家是否参与更新与绘制
	// 在碰撞检测前采样，撞上的那一帧仍然绘制
	fieldVisible bool
	lastOutcome  game.Outcome
	elapsed      float64
}

// NewGameScene 创建游戏场景
//
// 所需纹理必须已经通过 ResourceManager.LoadTextures 加载。
//
// 参数:
//   - rm: 资源管理器
//   - cfg: 已校验的游戏配置
//   - input: 跳跃输入
//   - rng: 障碍物生成使用的随机数来源
//   - logger: 日志，为 nil 时使用默认日志
func NewGameScene(
	rm *game.ResourceManager,
	cfg *config.GameConfig,
	input InputSource,
	rng entities.RandomSource,
	logger *log.Logger,
) (*GameScene, error) {
	if rm == nil || cfg == nil || input == nil {
		return nil, fmt.Errorf("game scene requires resource manager, config and input")
	}
	if logger == nil {
		logger = log.Default()
	}

	scene := &GameScene{
		resourceManager: rm,
		cfg:             cfg,
		input:           input,
		logger:          logger.WithPrefix("[GameScene]"),
		entityManager:   ecs.NewEntityManager(),
		fieldVisible:    true,
	}

	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)

	if err := scene.initBackground(); err != nil {
		return nil, err
	}

	playerTex, err := scene.texture(cfg.Player.Texture)
	if err != nil {
		return nil, err
	}
	scene.playerID, err = entities.NewPlayerEntity(scene.entityManager, playerTex, cfg.Player, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	obstacleTex, err := scene.texture(cfg.Obstacles.Texture)
	if err != nil {
		return nil, err
	}
	scene.obstacles, err = entities.NewObstacleField(scene.entityManager, obstacleTex, cfg.Obstacles, width, height, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create obstacles: %w", err)
	}

	scene.gameState = game.NewGameState(scene.obstacles.FinishLineX)

	face, err := rm.LoadFont(cfg.Outcome.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load outcome font: %w", err)
	}

	scene.parallaxSystem = systems.NewParallaxSystem(scene.entityManager)
	scene.physicsSystem = systems.NewGroundPhysicsSystem(scene.entityManager, cfg.Player.Gravity, cfg.Player.JumpVelocity, height)
	scene.obstacleSystem = systems.NewObstacleSystem(scene.entityManager)
	scene.collisionSystem = systems.NewCollisionSystem(scene.entityManager, scene.gameState)
	scene.outcomeSystem = systems.NewOutcomeSystem(scene.entityManager, scene.gameState, cfg.Obstacles.Velocity)
	scene.renderSystem = systems.NewRenderSystem(scene.entityManager, cfg.Outcome, face)

	scene.logger.Info("scene ready",
		"obstacles", scene.obstacles.Len(),
		"finishLine", scene.obstacles.FinishLineX,
		"layers", len(cfg.Background.Layers),
		"entities", scene.entityManager.EntityCount())

	return scene, nil
}

// initBackground 按配置顺序（从远到近）创建视差背景层
func (s *GameScene) initBackground() error {
	for depth, layer := range s.cfg.Background.Layers {
		tex, err := s.texture(layer.Texture)
		if err != nil {
			return err
		}
		if _, err := entities.NewParallaxLayer(s.entityManager, tex, depth, layer.Speed, s.cfg.Background.Scale); err != nil {
			return fmt.Errorf("failed to create background layer %q: %w", layer.Texture, err)
		}
	}
	return nil
}

func (s *GameScene) texture(id string) (*game.Texture, error) {
	tex := s.resourceManager.GetTexture(id)
	if tex == nil {
		return nil, fmt.Errorf("texture %q not loaded", id)
	}
	return tex, nil
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	jump := s.input.JumpPressed()

	s.parallaxSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime, jump)

	s.fieldVisible = s.gameState.InPlay()
	if s.fieldVisible {
		s.obstacleSystem.Update(deltaTime)
		s.collisionSystem.Update()
	}

	s.outcomeSystem.Update(deltaTime)

	if outcome := s.gameState.Outcome(); outcome != s.lastOutcome {
		s.logger.Info("outcome changed",
			"from", s.lastOutcome,
			"to", outcome,
			"elapsed", fmt.Sprintf("%.2fs", s.elapsed))
		s.lastOutcome = outcome
	}
}

// Draw 绘制场景：背景 → 障碍物 → 玩家 → 结局文字
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	s.drawWorld(screen)
	s.renderSystem.DrawOutcome(screen, s.gameState.Outcome())
}

// drawWorld 绘制背景；障碍物和玩家仅在 fieldVisible 时绘制
func (s *GameScene) drawWorld(canvas systems.Canvas) {
	s.renderSystem.DrawBackground(canvas)
	if s.fieldVisible {
		s.renderSystem.DrawObstacles(canvas)
		s.renderSystem.DrawPlayer(canvas)
	}
}

// GameState 返回当前游戏状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerID 返回玩家实体
func (s *GameScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// Obstacles 返回障碍物序列
func (s *GameScene) Obstacles() *entities.ObstacleField {
	return s.obstacles
}
