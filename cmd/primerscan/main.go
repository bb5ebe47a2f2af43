// cmd/primerscan/main.go
package main

import (
	"primerscan/internal/app"
	"primerscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
