package regexlite_test

import (
	"fmt"

	"github.com/coregx/regexlite"
)

func Example() {
	re := regexlite.MustCompile(`\d+`, "")
	matches := re.FindAllString("hello 123 world 456")
	for _, m := range matches {
		s, e := m.Span()
		fmt.Println(s, e)
	}
	// Output:
	// 6 9
	// 16 19
}

func Example_replace() {
	re := regexlite.MustCompile(`\d+`, "")
	out, count := re.ReplaceString("abc 123 xyz", "#")
	fmt.Println(out, count)
	// Output:
	// abc # xyz 1
}

func Example_groups() {
	re := regexlite.MustCompile(`(\w+)@(\w+)`, "")
	matches := re.FindAllString("user@example")
	s, e, _ := matches[0].Group(1)
	fmt.Println(matches[0].Span())
	fmt.Println(s, e)
	// Output:
	// 0 12
	// 0 4
}
