package conf

type ILogger interface {
	Debugf(format string, v ...any)

	Info(v ...any)
	Infof(format string, v ...any)

	Warn(v ...any)
	Warnf(format string, v ...any)

	Error(v ...any)
	Errorf(format string, v ...any)
}

var i ILogger

func Internal() ILogger {
	if i == nil {
		checkLogger()
	}
	return i
}
