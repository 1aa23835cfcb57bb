package main

import (
	"riocaja-smart-backend/cmd"
)

func main() {
	cmd.Execute()
}
