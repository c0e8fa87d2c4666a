// Package logger 是对 logrus 的简单封装，数据结构本身不打日志，只有命令行入口使用
package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup 设置日志级别和输出格式，json 为 true 时输出 JSON
func Setup(level string, json bool) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(parsed)
	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// WithField 返回带一个字段的日志条目
func WithField(key string, value interface{}) *logrus.Entry {
	return logrus.WithField(key, value)
}

func Info(args ...interface{}) {
	logrus.Info(args...)
}

func Error(args ...interface{}) {
	logrus.Error(args...)
}
