package main

import "github.com/wasabi0522/flowkit/cmd"

func main() {
	cmd.Execute()
}
