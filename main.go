package main

import "serve-web/cmd"

func main() {
	cmd.Execute()
}
