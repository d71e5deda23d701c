package main

import "github.com/theirongolddev/ecotrack/cmd"

func main() {
	cmd.Execute()
}
