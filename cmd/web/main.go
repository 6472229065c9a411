package main

import "cncquote/internal/app"

func main() {
	app.Run()
}
