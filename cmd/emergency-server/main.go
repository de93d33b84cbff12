package main

import "github.com/oshokin/emergency-button/cmd/emergency-server/cmd"

func main() {
	cmd.Execute()
}
