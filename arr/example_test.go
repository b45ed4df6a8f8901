package arr_test

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/hasbyte1/go-primitive-kit/arr"
	"github.com/hasbyte1/go-primitive-kit/prim"
)

func ExampleArray() {
	fmt.Println(arr.Array(nil), arr.Array("x"), arr.Array([]int{1, 2}))
	// Output: [] [x] [1 2]
}

func ExampleChunk() {
	for _, c := range arr.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleDeduplicate() {
	fmt.Println(arr.Deduplicate([]int{3, 1, 3, 2, 1}))
	// Output: [3 1 2]
}

func ExampleCollapse() {
	fmt.Println(arr.Collapse([]any{1, nil, 2, nil, 3}))
	// Output: [1 2 3]
}

func ExampleToSorted() {
	items := []int{3, 1, 2}
	fmt.Println(arr.ToSorted(items, cmp.Compare[int]), items)
	// Output: [1 2 3] [3 1 2]
}

func ExampleEquals() {
	fmt.Println(arr.Equals([]any{1, "a"}, [2]any{1, "a"}))
	fmt.Println(arr.Equals([]any{[]int{1}}, []any{[]int{1}}))
	fmt.Println(arr.EqualsDeep([]any{[]int{1}}, []any{[]int{1}}))
	// Output:
	// true
	// false
	// true
}

func ExampleReverseAny() {
	_, err := arr.ReverseAny("not an array")
	fmt.Println(errors.Is(err, prim.ErrType))
	// Output: true
}
