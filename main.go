package main

import "github.com/shawnxiao66/aichatbot/cmd"

func main() {
	cmd.Execute()
}
