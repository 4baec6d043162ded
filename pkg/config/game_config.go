package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrTooManyLayers 背景层数超过 MaxParallaxLayers
var ErrTooManyLayers = errors.New("too many parallax layers")

// GameConfig 游戏配置
//
// 所有数值的默认值来自 DefaultGameConfig()，
// YAML 文件中只需写需要覆盖的字段。
//
// 配置文件位置: data/game.yaml（编译时嵌入）
type GameConfig struct {
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// LogLevel 日志级别: debug / info / warn / error
	LogLevel string `yaml:"logLevel"`

	Window     WindowConfig      `yaml:"window"`
	Player     PlayerConfig      `yaml:"player"`
	Obstacles  ObstacleConfig    `yaml:"obstacles"`
	Background BackgroundConfig  `yaml:"background"`
	Outcome    OutcomeConfig     `yaml:"outcome"`
	Textures   []TextureResource `yaml:"textures"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PlayerConfig 玩家（Scarfy）配置
type PlayerConfig struct {
	Texture       string  `yaml:"texture"`
	Gravity       float64 `yaml:"gravity"`       // 重力加速度（像素/秒²）
	JumpVelocity  float64 `yaml:"jumpVelocity"`  // 起跳速度（像素/秒，负值向上）
	FrameDuration float64 `yaml:"frameDuration"` // 每帧时长（秒）
	MaxFrame      int     `yaml:"maxFrame"`
}

// ObstacleConfig 障碍物（星云）配置
type ObstacleConfig struct {
	Texture       string        `yaml:"texture"`
	Count         int           `yaml:"count"`
	Velocity      float64       `yaml:"velocity"` // 水平速度（像素/秒，负值向左）
	MinGap        int           `yaml:"minGap"`   // 相邻障碍物最小间距（含）
	MaxGap        int           `yaml:"maxGap"`   // 相邻障碍物最大间距（含）
	Padding       float64       `yaml:"padding"`  // 碰撞盒四边收缩量
	FrameDuration float64       `yaml:"frameDuration"`
	MaxFrame      int           `yaml:"maxFrame"`
	Palette       []ColorConfig `yaml:"palette"`
}

// BackgroundConfig 视差背景配置
type BackgroundConfig struct {
	Scale  float64       `yaml:"scale"`
	Layers []LayerConfig `yaml:"layers"` // 从远到近排列
}

// LayerConfig 单个背景层
type LayerConfig struct {
	Texture string  `yaml:"texture"`
	Speed   float64 `yaml:"speed"` // 滚动速度（像素/秒）
}

// OutcomeConfig 结局文字配置
type OutcomeConfig struct {
	FontSize      float64     `yaml:"fontSize"`
	OffsetY       float64     `yaml:"offsetY"` // 相对屏幕中心的纵向偏移
	GameOverText  string      `yaml:"gameOverText"`
	GameOverColor ColorConfig `yaml:"gameOverColor"`
	WinText       string      `yaml:"winText"`
	WinColor      ColorConfig `yaml:"winColor"`
}

// ColorConfig YAML 中的 RGBA 颜色
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA 转换为 color.RGBA
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

var (
	colorWhite = ColorConfig{R: 255, G: 255, B: 255, A: 255}
	colorRed   = ColorConfig{R: 230, G: 41, B: 55, A: 255}
	colorGreen = ColorConfig{R: 0, G: 228, B: 48, A: 255}
	colorBlue  = ColorConfig{R: 0, G: 121, B: 241, A: 255}
)

// DefaultGameConfig 返回原版数值
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  GameWindowTitle,
			TPS:    DefaultTPS,
		},
		Player: PlayerConfig{
			Texture:       TextureScarfy,
			Gravity:       1000,
			JumpVelocity:  -600,
			FrameDuration: 1.0 / 12.0,
			MaxFrame:      5,
		},
		Obstacles: ObstacleConfig{
			Texture:       TextureNebula,
			Count:         30,
			Velocity:      -250,
			MinGap:        300,
			MaxGap:        500,
			Padding:       50,
			FrameDuration: 1.0 / 16.0,
			MaxFrame:      7,
			Palette:       []ColorConfig{colorWhite, colorRed, colorBlue, colorGreen},
		},
		Background: BackgroundConfig{
			Scale: 2,
			Layers: []LayerConfig{
				{Texture: TextureFarBuildings, Speed: 20},
				{Texture: TextureBackBuildings, Speed: 50},
				{Texture: TextureForeground, Speed: 100},
			},
		},
		Outcome: OutcomeConfig{
			FontSize:      32,
			OffsetY:       -50,
			GameOverText:  "GAME OVER",
			GameOverColor: colorRed,
			WinText:       "YOU WON",
			WinColor:      colorGreen,
		},
		Textures: DefaultTextures(),
	}
}

// LoadGameConfig 加载游戏配置
//
// 参数:
//   - fsys: 配置所在的文件系统（嵌入资源或磁盘）
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 默认值叠加 YAML 内容后的配置
//   - error: 读取、解析或验证失败
func LoadGameConfig(fsys fs.FS, path string) (*GameConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 并叠加到默认配置上
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}

	if c.Player.Gravity <= 0 {
		return fmt.Errorf("player gravity must be positive, got %.1f", c.Player.Gravity)
	}
	if c.Player.JumpVelocity >= 0 {
		return fmt.Errorf("player jumpVelocity must be negative (upwards), got %.1f", c.Player.JumpVelocity)
	}
	if err := validateAnimation("player", c.Player.FrameDuration, c.Player.MaxFrame); err != nil {
		return err
	}

	o := c.Obstacles
	if o.Count <= 0 {
		return fmt.Errorf("obstacles count must be positive, got %d", o.Count)
	}
	if o.Velocity >= 0 {
		return fmt.Errorf("obstacles velocity must be negative (leftwards), got %.1f", o.Velocity)
	}
	if o.MinGap < 0 || o.MinGap > o.MaxGap {
		return fmt.Errorf("obstacles gap range invalid: min(%d) max(%d)", o.MinGap, o.MaxGap)
	}
	if o.Padding < 0 {
		return fmt.Errorf("obstacles padding must not be negative, got %.1f", o.Padding)
	}
	if len(o.Palette) == 0 {
		return fmt.Errorf("obstacles palette must not be empty")
	}
	if err := validateAnimation("obstacles", o.FrameDuration, o.MaxFrame); err != nil {
		return err
	}

	if c.Background.Scale <= 0 {
		return fmt.Errorf("background scale must be positive, got %.2f", c.Background.Scale)
	}
	if len(c.Background.Layers) > MaxParallaxLayers {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLayers, len(c.Background.Layers), MaxParallaxLayers)
	}
	for i, layer := range c.Background.Layers {
		if layer.Speed < 0 {
			return fmt.Errorf("background layer %d speed must not be negative, got %.1f", i, layer.Speed)
		}
	}

	if c.Outcome.FontSize <= 0 {
		return fmt.Errorf("outcome fontSize must be positive, got %.1f", c.Outcome.FontSize)
	}

	if err := c.validateTextures(); err != nil {
		return err
	}
	return c.validateFrameCounts()
}

// validateTextures 检查纹理清单：ID 唯一、路径非空、所有引用都存在
func (c *GameConfig) validateTextures() error {
	ids := make(map[string]bool, len(c.Textures))
	for _, tex := range c.Textures {
		if tex.ID == "" || tex.Path == "" {
			return fmt.Errorf("texture entry needs both id and path, got id=%q path=%q", tex.ID, tex.Path)
		}
		if ids[tex.ID] {
			return fmt.Errorf("duplicate texture id %q", tex.ID)
		}
		if tex.Cols < 0 || tex.Rows < 0 {
			return fmt.Errorf("texture %q has negative grid %dx%d", tex.ID, tex.Cols, tex.Rows)
		}
		ids[tex.ID] = true
	}

	refs := []string{c.Player.Texture, c.Obstacles.Texture}
	for _, layer := range c.Background.Layers {
		refs = append(refs, layer.Texture)
	}
	for _, ref := range refs {
		if !ids[ref] {
			return fmt.Errorf("unknown texture id %q", ref)
		}
	}
	return nil
}

// validateFrameCounts 检查动画帧数不超过精灵表列数
// 帧沿第一行排列，MaxFrame 必须是有效的列索引
func (c *GameConfig) validateFrameCounts() error {
	sheets := []struct {
		name     string
		texture  string
		maxFrame int
	}{
		{"player", c.Player.Texture, c.Player.MaxFrame},
		{"obstacles", c.Obstacles.Texture, c.Obstacles.MaxFrame},
	}

	for _, sheet := range sheets {
		res, ok := c.Texture(sheet.texture)
		if !ok {
			return fmt.Errorf("unknown texture id %q", sheet.texture)
		}
		if sheet.maxFrame >= res.GridCols() {
			return fmt.Errorf("%s maxFrame %d exceeds sprite sheet %q (%d columns)",
				sheet.name, sheet.maxFrame, res.ID, res.GridCols())
		}
	}
	return nil
}

func validateAnimation(name string, frameDuration float64, maxFrame int) error {
	if frameDuration <= 0 {
		return fmt.Errorf("%s frameDuration must be positive, got %f", name, frameDuration)
	}
	if maxFrame < 0 {
		return fmt.Errorf("%s maxFrame must not be negative, got %d", name, maxFrame)
	}
	return nil
}

// Texture 按 ID 查找纹理清单项
func (c *GameConfig) Texture(id string) (TextureResource, bool) {
	for _, tex := range c.Textures {
		if tex.ID == id {
			return tex, true
		}
	}
	return TextureResource{}, false
}
