package dice

import "go.uber.org/zap"

// Logged wraps a Source and logs every draw at debug level.
type Logged struct {
	src    Source
	logger *zap.Logger
}

// NewLogged creates a Source that draws from src and logs each result to logger.
//
// Precondition: src and logger must be non-nil.
func NewLogged(src Source, logger *zap.Logger) *Logged {
	return &Logged{src: src, logger: logger}
}

// Intn draws from the wrapped source and logs the range and result.
func (l *Logged) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("dice roll",
		zap.Int("range", n),
		zap.Int("value", v),
	)
	return v
}
