package main

import "github.com/oshokin/home-hub/cmd/home-hub/cmd"

func main() {
	cmd.Execute()
}
