package bounds

import (
	"errors"
	"strconv"
)

// ErrIndexOutOfBounds 所有越界错误都可以通过 errors.Is 与它匹配
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// OutOfBoundsErr 下标越界，记录了出错的下标和当时的长度
type OutOfBoundsErr struct {
	Index  int
	Length int
}

func (e *OutOfBoundsErr) Error() string {
	return "index out of bounds: index " + strconv.Itoa(e.Index) + ", length " + strconv.Itoa(e.Length)
}

// Is 使 errors.Is(err, ErrIndexOutOfBounds) 成立
func (e *OutOfBoundsErr) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

// MakeOutOfBoundsErr 返回一个越界错误
func MakeOutOfBoundsErr(index, length int) *OutOfBoundsErr {
	return &OutOfBoundsErr{
		Index:  index,
		Length: length,
	}
}
