package grant

import (
	"github.com/romashorodok/rv2class/pkg/protocol"
	"go.uber.org/fx"
)

var Module = fx.Module("grant",
	fx.Provide(
		NewTokenService,
		protocol.AsHttpController(NewGrantController),
	),
)
