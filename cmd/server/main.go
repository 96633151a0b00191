package main

import "iq-home/quote_backend/internal/app"

func main() {
	app.Run()
}
