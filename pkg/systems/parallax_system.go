package systems

import (
	"sort"

	"github.com/Nnorb87/DapperDasher/pkg/components"
	"github.com/Nnorb87/DapperDasher/pkg/ecs"
)

// ParallaxSystem 滚动视差背景层
//
// 每层独立速度；偏移滚到 -Span（两倍贴图宽度）及以下时归零。
type ParallaxSystem struct {
	entityManager *ecs.EntityManager
}

// NewParallaxSystem 创建视差背景系统
func NewParallaxSystem(em *ecs.EntityManager) *ParallaxSystem {
	return &ParallaxSystem{entityManager: em}
}

// Update 滚动所有背景层
func (s *ParallaxSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParallaxLayerComponent](s.entityManager) {
		layer, _ := ecs.GetComponent[*components.ParallaxLayerComponent](s.entityManager, id)
		ScrollLayer(layer, deltaTime)
	}
}

// ScrollLayer 滚动单个背景层
func ScrollLayer(layer *components.ParallaxLayerComponent, deltaTime float64) {
	layer.Offset -= layer.Speed * deltaTime
	if layer.Offset <= -layer.Span() {
		layer.Offset = 0
	}
}

// layersByDepth 按 Depth 从远到近返回背景层实体
func layersByDepth(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.ParallaxLayerComponent](em)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.ParallaxLayerComponent](em, ids[i])
		b, _ := ecs.GetComponent[*components.ParallaxLayerComponent](em, ids[j])
		return a.Depth < b.Depth
	})
	return ids
}
