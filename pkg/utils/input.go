// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardInput 基于键盘的跳跃输入
//
// 边沿触发：按住不放只在按下的那一帧生效。
type KeyboardInput struct {
	keys []ebiten.Key
}

// NewKeyboardInput 创建键盘输入，未指定按键时使用空格键
func NewKeyboardInput(keys ...ebiten.Key) *KeyboardInput {
	if len(keys) == 0 {
		keys = []ebiten.Key{ebiten.KeySpace}
	}
	return &KeyboardInput{keys: keys}
}

// JumpPressed 本帧是否刚按下任一跳跃键
func (k *KeyboardInput) JumpPressed() bool {
	for _, key := range k.keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
