package str_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-primitive-kit/str"
)

func ExampleString() {
	fmt.Printf("%q %q %q\n", str.String(nil), str.String(1e21), str.String([]any{1, nil, "a"}))
	// Output: "" "1e+21" "1,,a"
}

func ExampleNthIndexOf() {
	fmt.Println(str.NthIndexOf("1.2.0", ".", 1), str.NthIndexOf("1.2.0", ".", -3))
	// Output: 3 -1
}

func ExampleSplitFirst() {
	parts := str.SplitFirst("foo:bar:baz", ":")
	fmt.Println(parts[0], parts[1])
	// Output: foo bar:baz
}

func ExampleBetween() {
	fmt.Printf("%q\n", str.Between("foo bar foo", "foo", "foo"))
	// Output: " bar "
}

func ExampleInsert() {
	fmt.Println(str.Insert("world", "hello", -1))
	// Output: worldhello
}

func ExampleUnaccent() {
	fmt.Println(str.Unaccent("éàç"), str.Unaccent("ﬁèﬂ"))
	// Output: eac fiefl
}

func ExampleRandom() {
	s, err := str.Random(0)
	fmt.Printf("%q %v\n", s, err)

	_, err = str.Random(-1)
	fmt.Println(errors.Is(err, str.ErrInvalidLength))
	// Output:
	// "" <nil>
	// true
}
