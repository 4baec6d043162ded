package game

// Outcome 一局游戏的结果
type Outcome int

const (
	// OutcomePlaying 游戏进行中
	OutcomePlaying Outcome = iota
	// OutcomeCollided 玩家撞上障碍物（终态）
	OutcomeCollided
	// OutcomeWon 玩家越过终点线
	OutcomeWon
)

// String 返回结果名称，用于日志
func (o Outcome) String() string {
	switch o {
	case OutcomeCollided:
		return "collided"
	case OutcomeWon:
		return "won"
	default:
		return "playing"
	}
}

// GameState 存储一局游戏的胜负状态
// 由 GameScene 独占持有，各系统通过指针读写
type GameState struct {
	// Collided 玩家是否撞上过障碍物，一旦为 true 不再清除
	Collided bool

	// ReachedFinishLine 本帧玩家是否在终点线上或右侧，每帧重新计算
	ReachedFinishLine bool

	// FinishLineX 终点线的世界X坐标，与障碍物同速左移
	FinishLineX float64
}

// NewGameState 创建游戏状态
// finishLineX 通常是最后一个障碍物的生成位置
func NewGameState(finishLineX float64) *GameState {
	return &GameState{FinishLineX: finishLineX}
}

// MarkCollided 记录碰撞
func (gs *GameState) MarkCollided() {
	gs.Collided = true
}

// InPlay 障碍物是否仍在滚动、绘制和参与碰撞
//
// 撞上之后障碍物场冻结；但如果同时已越过终点线则继续。
func (gs *GameState) InPlay() bool {
	return !gs.Collided || gs.ReachedFinishLine
}

// Outcome 返回当前结果，碰撞优先于胜利
func (gs *GameState) Outcome() Outcome {
	if gs.Collided {
		return OutcomeCollided
	}
	if gs.ReachedFinishLine {
		return OutcomeWon
	}
	return OutcomePlaying
}
