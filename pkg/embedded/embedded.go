// Package embedded 提供资源文件的统一访问接口
//
// 游戏资源来自两处：
//   - "data/" 开头的配置文件，编译时嵌入（embed.FS 声明在项目根目录 embed.go）
//   - "textures/" 开头的纹理，运行时从工作目录读取
//
// 本包按路径前缀把请求路由到对应的文件系统，
// 并通过 FS() 暴露为一个普通的 fs.FS 供 ResourceManager 使用。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

const (
	dataPrefix     = "data/"
	texturesPrefix = "textures/"
)

var (
	dataFS      fs.FS
	texturesFS  fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数:
//   - data: 包含 data/ 目录的文件系统（通常是根目录的 embed.FS）
//   - textures: 包含 textures/ 目录的文件系统（通常是 os.DirFS(".")）
func Init(data, textures fs.FS) {
	dataFS = data
	texturesFS = textures
	initialized = true
}

// route 标准化路径并选择对应的文件系统
func route(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠，移除可能的 "./" 前缀
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	var fsys fs.FS
	switch {
	case strings.HasPrefix(path, dataPrefix):
		fsys = dataFS
	case strings.HasPrefix(path, texturesPrefix):
		fsys = texturesFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with %q or %q)", path, dataPrefix, texturesPrefix)
	}
	if fsys == nil {
		return nil, "", fmt.Errorf("no filesystem registered for %s: %w", path, fs.ErrNotExist)
	}
	return fsys, path, nil
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// FS 返回按前缀路由的 fs.FS 视图
func FS() fs.FS {
	return routerFS{}
}

// routerFS 把 fs.FS 接口转发到包级 Open
type routerFS struct{}

func (routerFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return Open(name)
}
