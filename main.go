package main

import (
	cmd "github.com/getmingle/mingle/cmd/mingle"
)

func main() {
	cmd.Execute()
}
