package arraylist

// NextCapacity 计算扩容后的容量，c 是当前容量，m 是至少需要的容量。
// 先尝试扩到 1.5 倍，不够的话直接用 m；c 为 0 时结果就是 m
func NextCapacity(c, m int) int {
	candidate := c + c>>1
	if candidate < m {
		return m
	}
	return candidate
}
