package utils

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// FormatSeq 把序列渲染成 "[a, b, c]" 的形式，空序列为 "[]"
func FormatSeq[T any](seq iter.Seq[T]) string {
	items := lo.Map(slices.Collect(seq), func(v T, _ int) string {
		return fmt.Sprint(v)
	})
	return "[" + strings.Join(items, ", ") + "]"
}
