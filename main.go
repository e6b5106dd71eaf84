package main

import "bizstat/cmd"

func main() {
	cmd.Execute()
}
