package logger

import "go.uber.org/zap"

// New creates a zap logger matching the runtime environment: human
// readable output in development, JSON in production.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
