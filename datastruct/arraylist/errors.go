package arraylist

import (
	"errors"
	"strconv"
)

// ErrIllegalCapacity 构造时传入了负数容量
var ErrIllegalCapacity = errors.New("illegal initial capacity")

// IllegalCapacityErr 记录非法的初始容量
type IllegalCapacityErr struct {
	Capacity int
}

func (e *IllegalCapacityErr) Error() string {
	return "illegal initial capacity: " + strconv.Itoa(e.Capacity)
}

func (e *IllegalCapacityErr) Is(target error) bool {
	return target == ErrIllegalCapacity
}
