package main

import (
	"shiftmate/internal/app"
)

func main() {
	app.Run()
}
