package main

import "github.com/ThatOtherAndrew/airshape/cmd"

func main() {
	cmd.Execute()
}
