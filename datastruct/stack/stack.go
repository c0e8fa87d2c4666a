// Package stack 单向链表实现的后进先出栈
package stack

import "github.com/samber/mo"

// Stack 只记录栈顶，每个结点指向在它之前入栈的结点
type Stack[T any] struct {
	top  *node[T]
	size int
}

type node[T any] struct {
	val  T
	next *node[T]
}

func Make[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(val T) {
	s.top = &node[T]{
		val:  val,
		next: s.top,
	}
	s.size++
}

// Pop 弹出栈顶，栈为空时返回 None
func (s *Stack[T]) Pop() mo.Option[T] {
	if s.top == nil {
		return mo.None[T]()
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return mo.Some(n.val)
}

func (s *Stack[T]) Peek() mo.Option[T] {
	if s.top == nil {
		return mo.None[T]()
	}
	return mo.Some(s.top.val)
}

func (s *Stack[T]) Len() int {
	return s.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}
