package main

import "github.com/cleitonmarx/symbiont-smarttasks/internal/app"

func main() {
	if err := app.NewSmartTasksApp().Run(); err != nil {
		panic(err)
	}
}
