package main

import "github.com/carebridge/backend/cmd"

func main() {
	cmd.Execute()
}
