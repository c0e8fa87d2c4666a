// Package queue 单向链表实现的先进先出队列
package queue

import "github.com/samber/mo"

// Queue 记录头尾两个结点，入队和出队都是 O(1)。不是线程安全的
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T any] struct {
	val  T
	next *node[T]
}

func Make[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue 加到队尾
func (q *Queue[T]) Enqueue(val T) {
	n := &node[T]{val: val}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Dequeue 取出队头，队列为空时返回 None
func (q *Queue[T]) Dequeue() mo.Option[T] {
	if q.head == nil {
		return mo.None[T]()
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		// 最后一个元素出队，tail 也要清掉
		q.tail = nil
	}
	n.next = nil
	q.size--
	return mo.Some(n.val)
}

// Peek 查看队头但不取出
func (q *Queue[T]) Peek() mo.Option[T] {
	if q.head == nil {
		return mo.None[T]()
	}
	return mo.Some(q.head.val)
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}
