package main

import "github.com/oshokin/emergency-button/cmd/emergency-tap/cmd"

func main() {
	cmd.Execute()
}
