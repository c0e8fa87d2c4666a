package cmd

import (
	"errors"
	"fmt"

	"miniDS/config"
	"miniDS/datastruct/array"
	"miniDS/datastruct/arraylist"
	"miniDS/datastruct/list"
	"miniDS/datastruct/queue"
	"miniDS/datastruct/stack"
	"miniDS/lib/bounds"
	"miniDS/lib/logger"

	"github.com/samber/lo"
)

// Walkthrough 按配置依次演示每种结构，遇到意料之外的错误时返回
func Walkthrough(props *config.WalkthroughProperties) error {
	elements := lo.Range(props.Elements)
	logger.WithField("elements", len(elements)).Info("starting walkthrough")

	steps := []struct {
		name string
		run  func([]int) error
	}{
		{"array", func(e []int) error { return walkArray(e) }},
		{"arraylist", func(e []int) error { return walkArrayList(props.Capacity, e) }},
		{"linkedlist", func(e []int) error { return walkLinkedList(e) }},
		{"queue", func(e []int) error { walkQueue(e); return nil }},
		{"stack", func(e []int) error { walkStack(e); return nil }},
	}
	for _, step := range steps {
		if err := step.run(elements); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	logger.Info("walkthrough finished")
	return nil
}

func walkArray(elements []int) error {
	seq := []int{}
	for _, e := range elements {
		seq = array.Append(seq, e)
	}
	inserted, err := array.Insert(seq, len(seq), -1)
	if err != nil {
		return err
	}
	removed, err := array.RemoveAtIndex(inserted, len(seq))
	if err != nil {
		return err
	}
	logger.WithField("structure", "array").Infof("appended %d, insert/remove at end restored length %d, index of -1 now %d",
		len(seq), len(removed), array.IndexOf(removed, -1))

	if _, err = array.RemoveAtIndex(seq, len(seq)); !errors.Is(err, bounds.ErrIndexOutOfBounds) {
		return fmt.Errorf("remove at length: expected out of bounds, got %v", err)
	}
	return nil
}

func walkArrayList(capacity int, elements []int) error {
	l, err := arraylist.NewWithCapacity[int](capacity)
	if err != nil {
		return err
	}
	log := logger.WithField("structure", "arraylist")
	for _, e := range elements {
		before := l.Cap()
		l.Push(e)
		if l.Cap() != before {
			log.Debugf("grew from %d to %d at length %d", before, l.Cap(), l.Len())
		}
	}
	log.Infof("length %d, capacity %d", l.Len(), l.Cap())

	// 与 array.Insert 不同，ArrayList 不允许在 Len() 处插入
	if err = l.Insert(l.Len(), -1); err != nil {
		log.Debugf("insert at length rejected: %v", err)
	}
	if !l.IsEmpty() {
		if err = l.Insert(0, -1); err != nil {
			return err
		}
		index := l.IndexOf(-1)
		log.Infof("inserted -1 at index %d, removed again: %v", index, l.RemoveElement(-1))
		log.Infof("last index of %d is %d", elements[0], l.LastIndexOf(elements[0]))
	}
	log.Debug(l)
	return nil
}

func walkLinkedList(elements []int) error {
	ll := list.Make[int]()
	for _, e := range elements {
		ll.Append(e)
	}
	ll.Prepend(-1)
	log := logger.WithField("structure", "linkedlist")
	mid := ll.Len() / 2
	val, err := ll.Get(mid)
	if err != nil {
		return err
	}
	log.Infof("middle element at %d is %d", mid, val)
	if _, err = ll.RemoveAtIndex(0); err != nil {
		return err
	}
	log.Infof("length %d, contents %s", ll.Len(), ll)
	return nil
}

func walkQueue(elements []int) {
	q := queue.Make[int]()
	for _, e := range elements {
		q.Enqueue(e)
	}
	order := make([]int, 0, q.Len())
	for v, ok := q.Dequeue().Get(); ok; v, ok = q.Dequeue().Get() {
		order = append(order, v)
	}
	logger.WithField("structure", "queue").Infof("dequeued %v", order)
}

func walkStack(elements []int) {
	s := stack.Make[int]()
	for _, e := range elements {
		s.Push(e)
	}
	order := make([]int, 0, s.Len())
	for v, ok := s.Pop().Get(); ok; v, ok = s.Pop().Get() {
		order = append(order, v)
	}
	logger.WithField("structure", "stack").Infof("popped %v", order)
}
