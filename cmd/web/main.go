package main

import "quicktweet_backend/internal/app"

func main() {
	app.Run()
}
