package frac_test

import (
	"fmt"

	"github.com/aatomu/frac"
)

func ExampleNew() {
	f := frac.New(6, 2)
	fmt.Println(f)
	fmt.Println(f.Improper())
	// Output:
	// 6/2
	// 3/1
}

func ExampleFrac_Proper() {
	fmt.Println(frac.New(7, 2).Proper())
	fmt.Println(frac.New(6, 2).Proper())
	fmt.Println(frac.New(1, 2).Proper())
	// Output:
	// 3 1/2
	// 3
	// 1/2
}

func ExampleSub() {
	// Sub takes the first argument away from the second.
	f := frac.Sub(frac.New(1, 4), frac.New(3, 4))
	fmt.Println(f, f.Improper())
	// Output: 8/16 1/2
}

func ExampleFromString() {
	f, err := frac.FromString("3.25")
	if err != nil {
		panic(err)
	}
	fmt.Println(f, f.Improper(), f.Float())
	// Output: 325/100 13/4 3.25
}

func ExampleFromString_multipleDecimalPoints() {
	_, err := frac.FromString("1.2.3")
	fmt.Println(err)
	// Output: frac: invalid string "1.2.3": multiple decimal points
}

func ExampleParse() {
	f, err := frac.Parse("2 3/4")
	if err != nil {
		panic(err)
	}
	fmt.Println(f, f.Proper())
	// Output: 11/4 2 3/4
}
