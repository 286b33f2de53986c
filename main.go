package main

import "github.com/shlint/shlint/cmd"

func main() {
	cmd.Execute()
}
