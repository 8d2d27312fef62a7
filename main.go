package main

import "github.com/spinsolve/nmrpath/cmd"

func main() {
	cmd.Execute()
}
