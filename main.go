package main

import "retroio/cmd"

func main() {
	cmd.Execute()
}
