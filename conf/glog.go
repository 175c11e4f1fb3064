//go:build glog || !slog

package conf

import (
	"flag"

	"github.com/golang/glog"
)

type adaptor struct {
}

func (w adaptor) Debugf(format string, v ...any) {
	if glog.V(1) {
		glog.InfoDepthf(1, format, v...)
	}
}

func (w adaptor) Info(v ...any) {
	glog.InfoDepth(1, v...)
}

func (w adaptor) Infof(format string, v ...any) {
	glog.InfoDepthf(1, format, v...)
}

func (w adaptor) Warn(v ...any) {
	glog.WarningDepth(1, v...)
}

func (w adaptor) Warnf(format string, v ...any) {
	glog.WarningDepthf(1, format, v...)
}

func (w adaptor) Error(v ...any) {
	glog.ErrorDepth(1, v...)
}

func (w adaptor) Errorf(format string, v ...any) {
	glog.ErrorDepthf(1, format, v...)
}

// a generator runs inside go generate, log files in the temp dir would go unseen
func checkLogger() {
	_ = flag.Set("logtostderr", "true")
	i = adaptor{}
}
