package utils

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the id of the current request.
const RequestIDKey = "request_id"

var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLogger sends notice board activity to stdout and warnings or failures to stderr.
func InitLogger() {
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.WarnLevel)
}

func newLogger(out *os.File, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(level)
	return l
}

// RequestError returns the error logger tagged with the request id and path.
func RequestError(c *gin.Context) *logrus.Entry {
	return ErrorLogger.WithFields(logrus.Fields{
		RequestIDKey: c.GetString(RequestIDKey),
		"path":       c.Request.URL.Path,
	})
}
