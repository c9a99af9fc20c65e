package main

import "github.com/khaled-yousef-TV/ai-test-generator/cmd"

func main() {
	cmd.Execute()
}
