package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"lexkit/lib"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tokens <file>")
		os.Exit(1)
	}

	data, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	for _, tok := range lib.Scan(string(data)) {
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Location.Line, tok.Location.Col, tok.Kind, tok.Text)
	}
}
