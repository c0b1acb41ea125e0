package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("done")

	if len(os.Args) > 1 {
		os.Exit(1) // want "direct os.Exit call in main function"
	}

	func() {
		os.Exit(3) // want "direct os.Exit call in main function"
	}()

	helper()
}
