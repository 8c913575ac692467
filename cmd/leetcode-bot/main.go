package main

import (
	_ "time/tzdata"

	"github.com/FunkyQai/Leetcode-Bot/internal/app"
)

func main() {
	app.Main()
}
