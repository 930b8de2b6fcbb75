//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/wee-types-go/support"
)

func initialize(ctx context.Context) (*application, func(), error) {
	panic(wire.Build(
		support.LoadConfig,
		support.NewLogger,
		support.TracerProvider,
		newHandler,
		newServer,
		wire.Struct(new(application), "*"),
	))
}
