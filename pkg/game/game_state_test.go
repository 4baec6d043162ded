package game

import "testing"

func TestNewGameState(t *testing.T) {
	gs := NewGameState(1234)

	if gs.FinishLineX != 1234 {
		t.Errorf("Expected FinishLineX 1234, got %f", gs.FinishLineX)
	}
	if gs.Collided || gs.ReachedFinishLine {
		t.Error("New game state should have no outcome")
	}
	if gs.Outcome() != OutcomePlaying {
		t.Errorf("Expected OutcomePlaying, got %v", gs.Outcome())
	}
	if !gs.InPlay() {
		t.Error("New game state should be in play")
	}
}

func TestGameState_Outcome(t *testing.T) {
	tests := []struct {
		name        string
		collided    bool
		reached     bool
		wantOutcome Outcome
		wantInPlay  bool
	}{
		{name: "playing", wantOutcome: OutcomePlaying, wantInPlay: true},
		{name: "collided", collided: true, wantOutcome: OutcomeCollided, wantInPlay: false},
		{name: "won", reached: true, wantOutcome: OutcomeWon, wantInPlay: true},
		// 碰撞优先显示 GAME OVER，但越过终点后障碍物场不冻结
		{name: "collided after finish", collided: true, reached: true, wantOutcome: OutcomeCollided, wantInPlay: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := &GameState{Collided: tt.collided, ReachedFinishLine: tt.reached}

			if got := gs.Outcome(); got != tt.wantOutcome {
				t.Errorf("Outcome() = %v, want %v", got, tt.wantOutcome)
			}
			if got := gs.InPlay(); got != tt.wantInPlay {
				t.Errorf("InPlay() = %v, want %v", got, tt.wantInPlay)
			}
		})
	}
}

func TestGameState_MarkCollidedIsPersistent(t *testing.T) {
	gs := NewGameState(0)
	gs.MarkCollided()
	gs.ReachedFinishLine = false

	if !gs.Collided {
		t.Error("Collided should stay true")
	}
	if gs.Outcome() != OutcomeCollided {
		t.Errorf("Expected OutcomeCollided, got %v", gs.Outcome())
	}
}

func TestOutcome_String(t *testing.T) {
	if OutcomePlaying.String() != "playing" || OutcomeCollided.String() != "collided" || OutcomeWon.String() != "won" {
		t.Error("unexpected Outcome names")
	}
}
