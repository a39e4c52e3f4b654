package main

import "jobportal_front/internal/app"

func main() {
	app.Run()
}
