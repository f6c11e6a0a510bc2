package main

import (
	"fmt"

	"github.com/aglyzov/go-suffixtree/suffixtree"
)

func main() {
	payload := []byte("bananas$")

	st, err := suffixtree.Build(payload)
	if err != nil {
		panic(err)
	}

	fmt.Print(st.Dump())
}
