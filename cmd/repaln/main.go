// cmd/repaln/main.go
package main

import (
	"repaln/internal/app"
	"repaln/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
