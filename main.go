package main

import "github.com/cozyGalvinism/webgone/cmd"

func main() {
	cmd.Execute()
}
