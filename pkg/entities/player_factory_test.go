package entities

import (
	"testing"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/config"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	tex := newTestTexture(768, 128, 6, 1)
	cfg := config.DefaultGameConfig().Player

	id, err := NewPlayerEntity(em, tex, cfg, 512, 380)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("PositionComponent missing")
	}
	// 水平居中：512/2 - 128/2 = 192；站在地面：380 - 128 = 252
	if pos.X != 192 || pos.Y != 252 {
		t.Errorf("Expected position (192, 252), got (%.1f, %.1f)", pos.X, pos.Y)
	}

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !ok {
		t.Fatal("AnimationComponent missing")
	}
	if anim.FrameRect.Width != 128 || anim.FrameRect.Height != 128 {
		t.Errorf("Expected frame 128x128, got %.0fx%.0f", anim.FrameRect.Width, anim.FrameRect.Height)
	}
	if anim.MaxFrame != 5 {
		t.Errorf("Expected MaxFrame 5, got %d", anim.MaxFrame)
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok || vel.VX != 0 || vel.VY != 0 {
		t.Error("Player should start at rest")
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || col.Padding != 0 {
		t.Error("Player collision box should be unpadded")
	}

	if !ecs.HasComponent[*components.PlayerComponent](em, id) {
		t.Error("PlayerComponent missing")
	}
}

func TestNewPlayerEntity_InvalidArgs(t *testing.T) {
	cfg := config.DefaultGameConfig().Player

	if _, err := NewPlayerEntity(nil, newTestTexture(60, 10, 6, 1), cfg, 512, 380); err == nil {
		t.Error("Expected error for nil entity manager")
	}
	if _, err := NewPlayerEntity(ecs.NewEntityManager(), nil, cfg, 512, 380); err == nil {
		t.Error("Expected error for nil texture")
	}
}
