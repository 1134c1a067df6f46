package interfaces

type ILogger interface {
	Named(name string) ILogger
	With(args ...interface{}) ILogger

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Sync() error
}
