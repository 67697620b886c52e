// Package autoload initializes the global logger from the environment as a
// side effect of being imported.
package autoload

import (
	configx "github.com/Kaztic/foodiespot-reservation-agent/pkg/config"
	logx "github.com/Kaztic/foodiespot-reservation-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
