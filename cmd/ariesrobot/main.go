package main

import "github.com/RiskyOsDev/ariesrobot/internal/cli"

func main() {
	cli.Execute()
}
