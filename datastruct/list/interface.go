package list

import "iter"

// Expected 检查给定项是否与期望值一致
type Expected[T any] func(a T) bool

// Consumer 遍历链表，返回 false 时中断遍历
type Consumer[T any] func(i int, v T) bool

// List 是按下标访问的线性表，LinkedList 和 arraylist.ArrayList 都实现了它
type List[T comparable] interface {
	Get(index int) (val T, err error)
	Set(index int, val T) error
	Insert(index int, val T) error
	RemoveAtIndex(index int) (val T, err error)
	IndexOf(val T) int
	LastIndexOf(val T) int
	Len() int
	IsEmpty() bool
	ForEach(consumer Consumer[T])
	Contains(expected Expected[T]) bool
	Range(start int, stop int) ([]T, error)
	All() iter.Seq[T]
}
