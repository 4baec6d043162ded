// Package ecs 提供最小的实体-组件存储
//
// 实体只是一个 ID；组件是任意指针，按具体类型存放。
// 系统通过 GetEntitiesWith 查询组件组合，再用 GetComponent 取出数据。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 查询结果按 EntityID 升序返回，即按创建顺序。
// 障碍物依赖这一点保持生成顺序。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]any
}

// NewEntityManager 创建一个新的 EntityManager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// IsAlive 检查实体是否存在
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// EntityCount 返回实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
// 对不存在的实体不做任何事
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.put(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) put(id EntityID, componentType reflect.Type, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, found := em.components[id][componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.components[id][componentType]
	return found
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体
//
// 返回:
//   - []EntityID: 满足条件的实体（按ID升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if hasAll(compMap, componentTypes) {
			result = append(result, id)
		}
	}

	// map 遍历顺序随机
	slices.Sort(result)
	return result
}

func hasAll(compMap map[reflect.Type]any, componentTypes []reflect.Type) bool {
	for _, ct := range componentTypes {
		if _, found := compMap[ct]; !found {
			return false
		}
	}
	return true
}
