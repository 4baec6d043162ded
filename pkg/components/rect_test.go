package components

import "testing"

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "player inside padded obstacle box",
			a:    Rect{X: 100, Y: 100, Width: 40, Height: 40},
			b:    Rect{X: 90, Y: 90, Width: 60, Height: 60},
			want: true,
		},
		{
			name: "far apart",
			a:    Rect{X: 0, Y: 0, Width: 40, Height: 40},
			b:    Rect{X: 200, Y: 0, Width: 60, Height: 60},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 40, Y: 40, Width: 50, Height: 50},
			want: true,
		},
		{
			name: "touching edges only",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 50, Y: 0, Width: 50, Height: 50},
			want: false,
		},
		{
			name: "overlap on x only",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 10, Y: 100, Width: 50, Height: 50},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 200, Height: 150}.Inset(50)
	want := Rect{X: 60, Y: 70, Width: 100, Height: 50}
	if r != want {
		t.Errorf("Inset = %+v, want %+v", r, want)
	}

	// 收缩量超过尺寸时宽高钳制为 0
	small := Rect{X: 0, Y: 0, Width: 60, Height: 60}.Inset(50)
	if small.Width != 0 || small.Height != 0 {
		t.Errorf("Expected zero size, got %fx%f", small.Width, small.Height)
	}
}

func TestRect_ImageRect(t *testing.T) {
	r := Rect{X: 256, Y: 0, Width: 128, Height: 140}.ImageRect()
	if r.Min.X != 256 || r.Min.Y != 0 || r.Dx() != 128 || r.Dy() != 140 {
		t.Errorf("ImageRect = %v", r)
	}
}

func TestCollisionComponent_Box(t *testing.T) {
	c := &CollisionComponent{Padding: 50}
	box := c.Box(&PositionComponent{X: 600, Y: 280}, Rect{X: 300, Width: 100, Height: 100})

	// 帧在精灵表中的 X 偏移不影响碰撞盒
	want := Rect{X: 650, Y: 330, Width: 0, Height: 0}
	if box != want {
		t.Errorf("Box = %+v, want %+v", box, want)
	}
}

func TestParallaxLayerComponent_TilePositions(t *testing.T) {
	p := &ParallaxLayerComponent{Offset: -30, Width: 256, Scale: 2}
	tiles := p.TilePositions()
	if tiles[0] != -30 || tiles[1] != 482 {
		t.Errorf("TilePositions = %v, want [-30 482]", tiles)
	}
}
