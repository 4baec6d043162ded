// Package app 提供游戏应用的核心包装器
//
// App 实现 ebiten.Game，把固定步长的帧间隔交给当前场景。
// 场景和资源由 main 构建后注入。
package app

import (
	"fmt"
	"image/color"

	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene     game.Scene
	window    config.WindowConfig
	deltaTime float64
	logger    *log.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建游戏应用
//
// 参数:
//   - scene: 游戏场景
//   - window: 窗口配置，TPS 决定每帧的 deltaTime
//   - logger: 日志，为 nil 时使用默认日志
func NewApp(scene game.Scene, window config.WindowConfig, logger *log.Logger) (*App, error) {
	if scene == nil {
		return nil, fmt.Errorf("scene cannot be nil")
	}
	if window.TPS <= 0 {
		return nil, fmt.Errorf("invalid tps %d", window.TPS)
	}
	if logger == nil {
		logger = log.Default()
	}

	return &App{
		scene:     scene,
		window:    window,
		deltaTime: 1.0 / float64(window.TPS),
		logger:    logger.WithPrefix("[App]"),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次；帧循环中没有可失败的操作，总是返回 nil
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.window.Width, a.window.Height)
			a.logger.Debug("delayed window size reset", "width", a.window.Width, "height", a.window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.logger.Debug("exit fullscreen, window size reset in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.scene.Update(a.deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右填充黑边，像素画使用最近邻缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.window.Width, a.window.Height
}
