package service

import (
	"github.com/romashorodok/rv2class/pkg/variables"
	"go.uber.org/fx"
)

func liveKitSource() variables.LiveKitSource {
	return variables.EnvLiveKitSource{}
}

var ConfigModule = fx.Module("config", fx.Provide(
	variables.LoadServer,
	liveKitSource,
))
