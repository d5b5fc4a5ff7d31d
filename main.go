package main

import "github.com/lucky7xz/gridnav/internal/app"

func main() {
	app.Run()
}
