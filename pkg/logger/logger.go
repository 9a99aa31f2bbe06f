// Package logger provides the logging facade used by the other packages in this module.
//
// Nothing is logged unless Logger is set. Applications typically assign it once at
// startup:
//
//	logger.Logger = logger.NewLogrus(logrus.StandardLogger())
package logger

// LoggerImpl is the interface that groups logging methods.
//
// Trace, Debug, Info, Warn and Error log to the applicable log level. Arguments are handled in the manner of fmt.Print.
// Tracef, Debugf, Infof, Warnf, Errorf log to the applicable log level. Arguments are handled in the manner of fmt.Printf.
type LoggerImpl interface {
	Trace(args ...interface{})
	Tracef(format string, args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// Logger is the LoggerImpl used when calling the global Logger functions.
// A nil Logger discards everything.
var Logger LoggerImpl

// Trace calls Logger.Trace.
func Trace(args ...interface{}) {
	if Logger != nil {
		Logger.Trace(args...)
	}
}

// Tracef calls Logger.Tracef.
func Tracef(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Tracef(format, args...)
	}
}

// Debug calls Logger.Debug.
func Debug(args ...interface{}) {
	if Logger != nil {
		Logger.Debug(args...)
	}
}

// Debugf calls Logger.Debugf.
func Debugf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Debugf(format, args...)
	}
}

// Info calls Logger.Info.
func Info(args ...interface{}) {
	if Logger != nil {
		Logger.Info(args...)
	}
}

// Infof calls Logger.Infof.
func Infof(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Infof(format, args...)
	}
}

// Warn calls Logger.Warn.
func Warn(args ...interface{}) {
	if Logger != nil {
		Logger.Warn(args...)
	}
}

// Warnf calls Logger.Warnf.
func Warnf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Warnf(format, args...)
	}
}

// Error calls Logger.Error.
func Error(args ...interface{}) {
	if Logger != nil {
		Logger.Error(args...)
	}
}

// Errorf calls Logger.Errorf.
func Errorf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Errorf(format, args...)
	}
}
