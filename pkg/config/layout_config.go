package config

// 布局配置常量
// 窗口逻辑尺寸固定，Ebitengine 负责缩放到实际窗口大小

const (
	// GameWindowWidth 游戏逻辑宽度（像素）
	GameWindowWidth = 512

	// GameWindowHeight 游戏逻辑高度（像素），也是地面所在的 Y 坐标
	GameWindowHeight = 380

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Dapper Dasher"

	// DefaultTPS 每秒逻辑更新次数
	DefaultTPS = 60

	// MaxParallaxLayers 背景最多允许的视差层数
	MaxParallaxLayers = 3
)
