package mylog

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// NewFileRotateHooker mirrors every log entry into hourly rotated files
// under path. age caps file retention in seconds; zero keeps everything.
func NewFileRotateHooker(path string, age uint32) logrus.Hook {
	if len(path) == 0 {
		panic("logger folder is empty")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		panic("failed to create logger folder:" + path + ". err:" + err.Error())
	}
	filePath := path + "/dascoin-%Y%m%d-%H.log"
	linkPath := path + "/dascoin.log"

	opts := []rotatelogs.Option{
		rotatelogs.WithLinkName(linkPath),
		rotatelogs.WithRotationTime(time.Hour),
	}
	if age > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(time.Duration(age)*time.Second))
	}
	writer, err := rotatelogs.New(filePath, opts...)
	if err != nil {
		panic("failed to create rotate logs. err:" + err.Error())
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, nil)
}
