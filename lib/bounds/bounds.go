// Package bounds 提供各个线性结构共用的下标检查
package bounds

// CheckIndex 用于读、写、删除：要求 0 <= index < length
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return MakeOutOfBoundsErr(index, length)
	}
	return nil
}

// CheckPosition 用于插入：允许 index == length，即追加到末尾
func CheckPosition(index, length int) error {
	if index < 0 || index > length {
		return MakeOutOfBoundsErr(index, length)
	}
	return nil
}

// CheckRange 检查半开区间 [start, stop)
func CheckRange(start, stop, length int) error {
	if start < 0 || start > length {
		return MakeOutOfBoundsErr(start, length)
	}
	if stop < start || stop > length {
		return MakeOutOfBoundsErr(stop, length)
	}
	return nil
}
