package main

import "github.com/oshokin/emergency-button/cmd/emergency-watcher/cmd"

func main() {
	cmd.Execute()
}
