package logging

import (
	"go.uber.org/zap"

	"github.com/forkful/backend/config"
)

// New builds the process logger: JSON in production, console elsewhere.
func New() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
