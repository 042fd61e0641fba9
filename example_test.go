package greetbridge_test

import (
	"errors"
	"fmt"

	"github.com/feather-lang/greetbridge"
)

func ExampleNew() {
	g, err := greetbridge.New("World")
	if err != nil {
		panic(err)
	}
	defer g.Close()

	msg, _ := g.Greet()
	fmt.Println(msg)
	// Output: Hello, World!
}

func ExampleNewUTF16() {
	_, err := greetbridge.NewUTF16([]uint16{'h', 'i', 0xD800})
	fmt.Println(errors.Is(err, greetbridge.ErrEncoding))

	var encErr *greetbridge.EncodingError
	if errors.As(err, &encErr) {
		fmt.Println(encErr.Offset, encErr.Reason)
	}
	// Output:
	// true
	// 2 unpaired high surrogate
}
