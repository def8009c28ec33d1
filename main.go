package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Ayush27641/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
