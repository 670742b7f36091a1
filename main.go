package main

import "github.com/theirongolddev/bizplan/cmd"

func main() {
	cmd.Execute()
}
