package main

import "github.com/josephlewis42/winlaunch/cmd"

func main() {
	cmd.Execute()
}
