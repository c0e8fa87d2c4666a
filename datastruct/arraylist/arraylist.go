// Package arraylist 实现了一个可增长的数组表。
// 底层数组只会扩容不会缩容，容量按 NextCapacity 的 1.5 倍策略增长
package arraylist

import (
	"iter"

	"miniDS/datastruct/list"
	"miniDS/lib/bounds"
	"miniDS/lib/utils"
)

// DefaultInitialCapacity 未指定容量时的初始容量
const DefaultInitialCapacity = 16

// ArrayList 不是线程安全的
type ArrayList[T comparable] struct {
	buf  []T // len(buf) 就是容量，[size, len(buf)) 之间的槽位没有意义
	size int
}

var _ list.List[int] = (*ArrayList[int])(nil)

// New 使用默认容量创建
func New[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{
		buf: make([]T, DefaultInitialCapacity),
	}
}

// NewWithCapacity 使用指定的初始容量创建，容量为负数时返回 IllegalCapacityErr
func NewWithCapacity[T comparable](capacity int) (*ArrayList[T], error) {
	if capacity < 0 {
		return nil, &IllegalCapacityErr{Capacity: capacity}
	}
	return &ArrayList[T]{
		buf: make([]T, capacity),
	}, nil
}

// Push 追加到末尾，均摊 O(1)
func (l *ArrayList[T]) Push(val T) {
	l.growIfNecessary()
	l.buf[l.size] = val
	l.size++
}

func (l *ArrayList[T]) Get(index int) (val T, err error) {
	if err = bounds.CheckIndex(index, l.size); err != nil {
		return val, err
	}
	return l.buf[index], nil
}

func (l *ArrayList[T]) Set(index int, val T) error {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return err
	}
	l.buf[index] = val
	return nil
}

// Insert 在 index 处插入，后面的元素整体后移一位。
// 要求 0 <= index < Len()，不能用 Insert 追加到末尾，追加请用 Push
func (l *ArrayList[T]) Insert(index int, val T) error {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return err
	}
	l.growIfNecessary()

	// 从尾部往前挪，避免覆盖还没移动的元素
	for i := l.size; i > index; i-- {
		l.buf[i] = l.buf[i-1]
	}
	l.buf[index] = val
	l.size++
	return nil
}

// RemoveAtIndex 删除 index 处的元素并返回它，后面的元素整体前移一位
func (l *ArrayList[T]) RemoveAtIndex(index int) (val T, err error) {
	if err = bounds.CheckIndex(index, l.size); err != nil {
		return val, err
	}
	val = l.buf[index]
	for i := index; i < l.size-1; i++ {
		l.buf[i] = l.buf[i+1]
	}
	var zero T
	l.size--
	l.buf[l.size] = zero
	return val, nil
}

// RemoveElement 删除第一个等于 val 的元素，不存在时返回 false
func (l *ArrayList[T]) RemoveElement(val T) bool {
	index := l.IndexOf(val)
	if index < 0 {
		return false
	}
	_, _ = l.RemoveAtIndex(index)
	return true
}

func (l *ArrayList[T]) IndexOf(val T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == val {
			return i
		}
	}
	return -1
}

func (l *ArrayList[T]) LastIndexOf(val T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.buf[i] == val {
			return i
		}
	}
	return -1
}

func (l *ArrayList[T]) Len() int {
	return l.size
}

// Cap 返回底层数组的容量
func (l *ArrayList[T]) Cap() int {
	return len(l.buf)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *ArrayList[T]) ForEach(consumer list.Consumer[T]) {
	for i := 0; i < l.size; i++ {
		if !consumer(i, l.buf[i]) {
			break
		}
	}
}

func (l *ArrayList[T]) Contains(expected list.Expected[T]) bool {
	for i := 0; i < l.size; i++ {
		if expected(l.buf[i]) {
			return true
		}
	}
	return false
}

// Range 返回 [start, stop) 之间元素的拷贝
func (l *ArrayList[T]) Range(start int, stop int) ([]T, error) {
	if err := bounds.CheckRange(start, stop, l.size); err != nil {
		return nil, err
	}
	slice := make([]T, stop-start)
	copy(slice, l.buf[start:stop])
	return slice, nil
}

func (l *ArrayList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(l.buf[i]) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) String() string {
	return utils.FormatSeq(l.All())
}

func (l *ArrayList[T]) growIfNecessary() {
	if l.size == len(l.buf) {
		l.grow(l.size + 1)
	}
}

func (l *ArrayList[T]) grow(minCapacity int) {
	buf := make([]T, NextCapacity(len(l.buf), minCapacity))
	copy(buf, l.buf[:l.size])
	l.buf = buf
}
