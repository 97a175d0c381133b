package main

import (
	"go.uber.org/fx"

	appfx "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
