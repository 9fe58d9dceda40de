package main

import "clubdesk.app/backend/cmd/app"

func main() {
	app.Run()
}
