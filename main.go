package main

import "github.com/Taichi-iskw/tv-guide/cmd"

func main() {
	cmd.Execute()
}
