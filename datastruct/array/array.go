// Package array 实现了作用在切片上的纯函数：插入、追加、删除、查找。
// 所有函数都不会修改传入的切片，而是返回一个新分配的切片。
package array

import "miniDS/lib/bounds"

// Insert 在 index 处插入 element，返回长度加一的新切片。
// 允许 index == len(seq)，此时等价于追加
func Insert[T any](seq []T, index int, element T) ([]T, error) {
	if err := bounds.CheckPosition(index, len(seq)); err != nil {
		return nil, err
	}
	result := make([]T, len(seq)+1)
	copy(result, seq[:index])
	result[index] = element
	copy(result[index+1:], seq[index:])
	return result, nil
}

// Append 返回在末尾追加 element 后的新切片
func Append[T any](seq []T, element T) []T {
	// index == len(seq) 一定合法
	result, _ := Insert(seq, len(seq), element)
	return result
}

// RemoveAtIndex 返回去掉 index 处元素后的新切片，要求 0 <= index < len(seq)
func RemoveAtIndex[T any](seq []T, index int) ([]T, error) {
	if err := bounds.CheckIndex(index, len(seq)); err != nil {
		return nil, err
	}
	result := make([]T, len(seq)-1)
	copy(result, seq[:index])
	copy(result[index:], seq[index+1:])
	return result, nil
}

// IndexOf 返回第一个等于 element 的下标，找不到返回 -1
func IndexOf[T comparable](seq []T, element T) int {
	for i, v := range seq {
		if v == element {
			return i
		}
	}
	return -1
}
