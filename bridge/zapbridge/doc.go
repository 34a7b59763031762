// Package zapbridge provides a zapcore.Core that renders zap entries
// through a daylog Logger. Wrap it with zap.New to let existing zap call
// sites write into the daily log file:
//
//	z := zap.New(zapbridge.NewCore(l, zap.InfoLevel), zap.AddCaller())
//	z.Warn("disk full", zap.Int("pct", 93))
//
// Fields are appended to the message as key=value pairs sorted by key.
package zapbridge
