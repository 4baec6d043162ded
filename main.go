// dapper-dasher is a side-scrolling jump-over-the-nebula arcade game.
//
// Usage:
//
//	dapper-dasher
//
// Press space to jump. Textures are read from ./textures; the game
// configuration is embedded into the binary.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Nnorb87/DapperDasher/pkg/app"
	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/embedded"
	"github.com/Nnorb87/DapperDasher/pkg/game"
	"github.com/Nnorb87/DapperDasher/pkg/scenes"
	"github.com/Nnorb87/DapperDasher/pkg/utils"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const configPath = "data/game.yaml"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "dasher",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dapper-dasher",
	Short: "Dapper Dasher - jump over the nebulae and reach the finish line",
	Long: `Dapper Dasher is a small side-scrolling arcade game.

Scarfy runs in place while nebulae scroll in from the right. Press space
to jump over them. Touching a nebula ends the run; passing the last one
wins it. Close the window to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	embedded.Init(dataFS, os.DirFS("."))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rm := game.NewResourceManager(embedded.FS(), logger)
	defer rm.UnloadAll()

	if err := rm.LoadTextures(cfg.Textures); err != nil {
		return fmt.Errorf("failed to load textures: %w", err)
	}

	scene, err := scenes.NewGameScene(rm, cfg, utils.NewKeyboardInput(), newRandom(cfg.Seed), logger)
	if err != nil {
		return fmt.Errorf("failed to create game scene: %w", err)
	}

	gameApp, err := app.NewApp(scene, cfg.Window, logger)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info("starting game", "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "tps", cfg.Window.TPS)

	// 关闭窗口时 RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("window closed")
	return nil
}

// loadConfig 读取嵌入的游戏配置并应用日志级别
func loadConfig() (*config.GameConfig, error) {
	cfg, err := config.LoadGameConfig(embedded.FS(), configPath)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid logLevel %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	logger.Debug("config loaded", "path", configPath, "seed", cfg.Seed, "obstacles", cfg.Obstacles.Count)
	return cfg, nil
}

// newRandom 创建障碍物生成用的随机数源，seed 为 0 时使用当前时间
func newRandom(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s))
}
