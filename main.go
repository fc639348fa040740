package main

import "github.com/aura-platform/contact-api/cmd"

func main() {
	cmd.Execute()
}
