package ecs

import "reflect"

// typeOf 返回类型参数 T 对应的 reflect.Type
// 对接口以外的类型不需要构造零值实例
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 泛型版本的 AddComponent
//
// 示例:
//
//	ecs.AddComponent(em, id, &components.PositionComponent{X: 10})
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.put(id, typeOf[T](), component)
}

// GetComponent 泛型版本的 GetComponent，省去类型断言
//
// 示例:
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, found := em.components[id][typeOf[T]()]
	if !found {
		var zero T
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 泛型版本的 HasComponent
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 泛型版本的 RemoveComponent
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体（按ID升序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 的所有实体（按ID升序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 的所有实体（按ID升序）
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
