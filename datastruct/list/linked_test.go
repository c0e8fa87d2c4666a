package list

import (
	"errors"
	"slices"
	"testing"

	"miniDS/lib/bounds"

	. "github.com/smartystreets/goconvey/convey"
)

// checkLinks 验证 prev/next 链一致并且长度正确
func checkLinks[T comparable](list *LinkedList[T]) {
	So(list.first == nil, ShouldEqual, list.size == 0)
	So(list.last == nil, ShouldEqual, list.size == 0)
	if list.first != nil {
		So(list.first.prev, ShouldBeNil)
		So(list.last.next, ShouldBeNil)
	}
	count := 0
	var prev *node[T]
	for n := list.first; n != nil; n = n.next {
		So(n.prev == prev, ShouldBeTrue)
		prev = n
		count++
	}
	So(prev == list.last, ShouldBeTrue)
	So(count, ShouldEqual, list.size)
}

func TestAppendPrepend(t *testing.T) {
	Convey("Append and Prepend", t, func() {
		list := Make[int]()
		So(list.IsEmpty(), ShouldBeTrue)

		list.Append(2)
		list.Prepend(1)
		list.Append(3)
		checkLinks(list)
		So(slices.Collect(list.All()), ShouldResemble, []int{1, 2, 3})
		So(list.Len(), ShouldEqual, 3)

		Convey("Prepend on an empty list sets head and tail", func() {
			other := Make[string]()
			other.Prepend("a")
			checkLinks(other)
			So(other.String(), ShouldEqual, "[a]")
		})
	})
}

func TestGetSet(t *testing.T) {
	Convey("Get and Set", t, func() {
		list := Make(1, 2, 3, 4, 5)
		for i := 0; i < 5; i++ {
			val, err := list.Get(i)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, i+1)
		}

		So(list.Set(3, 40), ShouldBeNil)
		val, _ := list.Get(3)
		So(val, ShouldEqual, 40)

		_, err := list.Get(5)
		So(errors.Is(err, bounds.ErrIndexOutOfBounds), ShouldBeTrue)
		_, err = list.Get(-1)
		So(err, ShouldNotBeNil)
		So(list.Set(5, 0), ShouldNotBeNil)
		So(list.String(), ShouldEqual, "[1, 2, 3, 40, 5]")
	})
}

func TestWalkHops(t *testing.T) {
	Convey("walk never takes more than ceil(n/2) hops", t, func() {
		for size := 1; size <= 9; size++ {
			list := Make[int]()
			for i := 0; i < size; i++ {
				list.Append(i)
			}
			limit := (size + 1) / 2
			for i := 0; i < size; i++ {
				n, hops := list.walk(i)
				So(n.val, ShouldEqual, i)
				So(hops, ShouldBeLessThanOrEqualTo, limit)
			}
		}
	})
}

func TestInsert(t *testing.T) {
	Convey("Insert", t, func() {
		list := Make(1, 2, 3)

		Convey("Should insert before the node at index", func() {
			So(list.Insert(1, 9), ShouldBeNil)
			So(list.String(), ShouldEqual, "[1, 9, 2, 3]")
			checkLinks(list)
		})

		Convey("Should relink the head when index is 0", func() {
			So(list.Insert(0, 0), ShouldBeNil)
			So(list.String(), ShouldEqual, "[0, 1, 2, 3]")
			checkLinks(list)
		})

		Convey("Should insert before the tail", func() {
			So(list.Insert(2, 9), ShouldBeNil)
			So(list.String(), ShouldEqual, "[1, 2, 9, 3]")
			checkLinks(list)
		})

		Convey("Should reject index == length and leave the list untouched", func() {
			So(list.Insert(3, 9), ShouldNotBeNil)
			So(list.Insert(-1, 9), ShouldNotBeNil)
			So(list.String(), ShouldEqual, "[1, 2, 3]")
			So(Make[int]().Insert(0, 1), ShouldNotBeNil)
		})
	})
}

func TestRemoveAtIndex(t *testing.T) {
	Convey("RemoveAtIndex", t, func() {
		list := Make(1, 2, 3, 4)

		Convey("Should remove the head", func() {
			head := list.first
			val, err := list.RemoveAtIndex(0)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, 1)
			So(head.next, ShouldBeNil)
			So(head.prev, ShouldBeNil)
			So(head.val, ShouldEqual, 0)
			So(list.String(), ShouldEqual, "[2, 3, 4]")
			checkLinks(list)
		})

		Convey("Should remove the tail", func() {
			tail := list.last
			val, err := list.RemoveAtIndex(3)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, 4)
			So(tail.prev, ShouldBeNil)
			So(list.String(), ShouldEqual, "[1, 2, 3]")
			checkLinks(list)
		})

		Convey("Should remove from the middle", func() {
			val, err := list.RemoveAtIndex(2)
			So(err, ShouldBeNil)
			So(val, ShouldEqual, 3)
			So(list.String(), ShouldEqual, "[1, 2, 4]")
			checkLinks(list)
		})

		Convey("Should empty a single element list", func() {
			single := Make("x")
			_, err := single.RemoveAtIndex(0)
			So(err, ShouldBeNil)
			So(single.IsEmpty(), ShouldBeTrue)
			checkLinks(single)
		})

		Convey("Should reject out of range indices", func() {
			_, err := list.RemoveAtIndex(4)
			So(errors.Is(err, bounds.ErrIndexOutOfBounds), ShouldBeTrue)
			So(list.Len(), ShouldEqual, 4)
		})
	})
}

func TestRemoveLastAndByVal(t *testing.T) {
	Convey("RemoveLast and RemoveAllByVal", t, func() {
		list := Make(1, 2, 1, 3, 1)
		So(list.RemoveLast().MustGet(), ShouldEqual, 1)
		So(list.RemoveAllByVal(func(a int) bool { return a == 1 }), ShouldEqual, 2)
		So(list.String(), ShouldEqual, "[2, 3]")
		checkLinks(list)

		list.RemoveLast()
		list.RemoveLast()
		So(list.RemoveLast().IsAbsent(), ShouldBeTrue)
	})
}

func TestIndexOf(t *testing.T) {
	Convey("IndexOf and LastIndexOf", t, func() {
		list := Make(1, 2, 3)
		So(list.IndexOf(1), ShouldEqual, 0)
		So(list.LastIndexOf(3), ShouldEqual, 2)
		So(list.IndexOf(4), ShouldEqual, -1)
		So(list.LastIndexOf(4), ShouldEqual, -1)

		same := Make(1, 1, 1)
		So(same.IndexOf(1), ShouldEqual, 0)
		So(same.LastIndexOf(1), ShouldEqual, 2)
	})
}

func TestAll(t *testing.T) {
	Convey("All", t, func() {
		Convey("Should yield nothing for an empty list", func() {
			count := 0
			for range Make[int]().All() {
				count++
			}
			So(count, ShouldEqual, 0)
		})

		Convey("Should restart from the head on every call", func() {
			list := Make(1, 2, 3)
			So(slices.Collect(list.All()), ShouldResemble, []int{1, 2, 3})
			So(slices.Collect(list.All()), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Should stop early when the consumer breaks", func() {
			list := Make(1, 2, 3)
			var seen []int
			for v := range list.All() {
				seen = append(seen, v)
				if v == 2 {
					break
				}
			}
			So(seen, ShouldResemble, []int{1, 2})
		})
	})
}

func TestForEachContainsRange(t *testing.T) {
	Convey("ForEach, Contains and Range", t, func() {
		list := Make(10, 20, 30, 40)

		var indices []int
		list.ForEach(func(i int, v int) bool {
			indices = append(indices, i)
			return v < 20
		})
		So(indices, ShouldResemble, []int{0, 1})

		So(list.Contains(func(a int) bool { return a == 30 }), ShouldBeTrue)
		So(list.Contains(func(a int) bool { return a > 100 }), ShouldBeFalse)

		slice, err := list.Range(1, 3)
		So(err, ShouldBeNil)
		So(slice, ShouldResemble, []int{20, 30})

		slice, err = list.Range(4, 4)
		So(err, ShouldBeNil)
		So(slice, ShouldBeEmpty)

		_, err = list.Range(2, 5)
		So(err, ShouldNotBeNil)
	})
}
