package config

// TextureResource 纹理清单中的一项
//
// 示例（game.yaml）:
//
//	textures:
//	  - id: scarfy
//	    path: textures/scarfy.png
//	    cols: 6
//
//	  - id: nebula
//	    path: textures/12_nebula_spritesheet.png
//	    cols: 8
//	    rows: 8
type TextureResource struct {
	ID   string `yaml:"id"`             // 资源ID（唯一）
	Path string `yaml:"path"`           // 相对工作目录的文件路径
	Cols int    `yaml:"cols,omitempty"` // 精灵表列数（0 视为 1）
	Rows int    `yaml:"rows,omitempty"` // 精灵表行数（0 视为 1）
}

// GridCols 返回有效列数
func (t TextureResource) GridCols() int {
	if t.Cols <= 0 {
		return 1
	}
	return t.Cols
}

// GridRows 返回有效行数
func (t TextureResource) GridRows() int {
	if t.Rows <= 0 {
		return 1
	}
	return t.Rows
}

// 纹理资源ID
const (
	TextureScarfy        = "scarfy"
	TextureNebula        = "nebula"
	TextureFarBuildings  = "far_buildings"
	TextureBackBuildings = "back_buildings"
	TextureForeground    = "foreground"
)

// DefaultTextures 返回默认纹理清单
func DefaultTextures() []TextureResource {
	return []TextureResource{
		{ID: TextureScarfy, Path: "textures/scarfy.png", Cols: 6, Rows: 1},
		{ID: TextureNebula, Path: "textures/12_nebula_spritesheet.png", Cols: 8, Rows: 8},
		{ID: TextureFarBuildings, Path: "textures/far-buildings.png"},
		{ID: TextureBackBuildings, Path: "textures/back-buildings.png"},
		{ID: TextureForeground, Path: "textures/foreground.png"},
	}
}
