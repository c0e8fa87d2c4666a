package list

import (
	"iter"

	"miniDS/lib/bounds"
	"miniDS/lib/utils"

	"github.com/samber/mo"
)

// LinkedList 双向链表，不是线程安全的
type LinkedList[T comparable] struct {
	first *node[T]
	last  *node[T]
	size  int
}

type node[T comparable] struct {
	val  T
	prev *node[T]
	next *node[T]
}

var _ List[int] = (*LinkedList[int])(nil)

func Make[T comparable](vals ...T) *LinkedList[T] {
	list := LinkedList[T]{}
	for _, v := range vals {
		list.Append(v)
	}
	return &list
}

// Append 在尾部追加
func (list *LinkedList[T]) Append(val T) {
	n := &node[T]{
		val:  val,
		prev: list.last,
	}
	if list.last == nil {
		// empty list
		list.first = n
	} else {
		list.last.next = n
	}
	list.last = n
	list.size++
}

// Prepend 在头部插入
func (list *LinkedList[T]) Prepend(val T) {
	n := &node[T]{
		val:  val,
		next: list.first,
	}
	if list.first == nil {
		list.last = n
	} else {
		list.first.prev = n
	}
	list.first = n
	list.size++
}

// walk 折半查找，返回 index 对应的结点和走过的指针跳数。
// 调用方需保证 index 合法
func (list *LinkedList[T]) walk(index int) (n *node[T], hops int) {
	if index < list.size/2 {
		n = list.first
		for i := 0; i < index; i++ {
			n = n.next
			hops++
		}
	} else {
		n = list.last
		for i := list.size - 1; i > index; i-- {
			n = n.prev
			hops++
		}
	}
	return n, hops
}

func (list *LinkedList[T]) find(index int) (*node[T], error) {
	if err := bounds.CheckIndex(index, list.size); err != nil {
		return nil, err
	}
	n, _ := list.walk(index)
	return n, nil
}

func (list *LinkedList[T]) Get(index int) (val T, err error) {
	n, err := list.find(index)
	if err != nil {
		return val, err
	}
	return n.val, nil
}

func (list *LinkedList[T]) Set(index int, val T) error {
	n, err := list.find(index)
	if err != nil {
		return err
	}
	n.val = val
	return nil
}

// Insert 在 index 处的结点之前插入 val，要求 0 <= index < Len()
func (list *LinkedList[T]) Insert(index int, val T) error {
	pivot, err := list.find(index)
	if err != nil {
		return err
	}
	n := &node[T]{
		val:  val,
		prev: pivot.prev,
		next: pivot,
	}
	if pivot.prev == nil {
		list.first = n
	} else {
		pivot.prev.next = n
	}
	pivot.prev = n
	list.size++
	return nil
}

// removeNode 把结点摘下来，并断开它的前后指针
func (list *LinkedList[T]) removeNode(n *node[T]) T {
	if n.prev == nil {
		list.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		list.last = n.prev
	} else {
		n.next.prev = n.prev
	}

	// for gc
	val := n.val
	var zero T
	n.prev = nil
	n.next = nil
	n.val = zero

	list.size--
	return val
}

func (list *LinkedList[T]) RemoveAtIndex(index int) (val T, err error) {
	n, err := list.find(index)
	if err != nil {
		return val, err
	}
	return list.removeNode(n), nil
}

// RemoveLast 移除尾结点，链表为空时返回 None
func (list *LinkedList[T]) RemoveLast() mo.Option[T] {
	if list.last == nil {
		return mo.None[T]()
	}
	return mo.Some(list.removeNode(list.last))
}

// RemoveAllByVal 移除所有满足 expected 的元素，返回移除的个数
func (list *LinkedList[T]) RemoveAllByVal(expected Expected[T]) int {
	n := list.first
	removed := 0
	var nextNode *node[T]
	for n != nil {
		nextNode = n.next
		if expected(n.val) {
			list.removeNode(n)
			removed++
		}
		n = nextNode
	}
	return removed
}

// IndexOf 从头向后找第一个等于 val 的下标，找不到返回 -1
func (list *LinkedList[T]) IndexOf(val T) int {
	i := 0
	for n := list.first; n != nil; n = n.next {
		if n.val == val {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf 从尾向前找
func (list *LinkedList[T]) LastIndexOf(val T) int {
	i := list.size - 1
	for n := list.last; n != nil; n = n.prev {
		if n.val == val {
			return i
		}
		i--
	}
	return -1
}

func (list *LinkedList[T]) Len() int {
	return list.size
}

func (list *LinkedList[T]) IsEmpty() bool {
	return list.size == 0
}

func (list *LinkedList[T]) ForEach(consumer Consumer[T]) {
	n := list.first
	i := 0
	for n != nil {
		goNext := consumer(i, n.val)
		if !goNext {
			break
		}
		i++
		n = n.next
	}
}

// All 返回从头到尾的惰性序列，每次调用都从头开始遍历
func (list *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := list.first; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Contains 查看是否有满足 expected 的元素
func (list *LinkedList[T]) Contains(expected Expected[T]) bool {
	contains := false
	list.ForEach(func(i int, actual T) bool {
		if expected(actual) {
			contains = true
			return false
		}
		return true
	})
	return contains
}

// Range 返回 [start, stop) 之间的元素
func (list *LinkedList[T]) Range(start int, stop int) ([]T, error) {
	if err := bounds.CheckRange(start, stop, list.size); err != nil {
		return nil, err
	}
	slice := make([]T, 0, stop-start)
	if start == stop {
		return slice, nil
	}
	n, _ := list.walk(start)
	for i := start; i < stop; i++ {
		slice = append(slice, n.val)
		n = n.next
	}
	return slice, nil
}

func (list *LinkedList[T]) String() string {
	return utils.FormatSeq(list.All())
}
