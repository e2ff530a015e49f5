package main

import "github.com/gaurav-prasanna/paste2md/cmd"

func main() {
	cmd.Execute()
}
