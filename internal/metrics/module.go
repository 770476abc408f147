package metrics

import "go.uber.org/fx"

// Module provides the shared metrics instance.
var Module = fx.Provide(New)
