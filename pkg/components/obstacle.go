package components

// ObstacleComponent 标识障碍物实体（星云）
type ObstacleComponent struct{}
