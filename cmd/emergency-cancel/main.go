package main

import "github.com/oshokin/emergency-button/cmd/emergency-cancel/cmd"

func main() {
	cmd.Execute()
}
