package scenes

import (
	"github.com/Nnorb87/DapperDasher/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// InputSource 提供每帧的跳跃输入
// utils.KeyboardInput 是默认实现，测试中可替换为脚本输入
type InputSource interface {
	// JumpPressed 本帧是否刚按下跳跃键
	JumpPressed() bool
}
