package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// New opens (appending) today's log file LogDir/YYYY-MM-DD<suffix>.log.
func New(filenameSuffix string) (*os.File, error) {
	if err := ensureDir(); err != nil {
		return nil, err
	}
	return os.OpenFile(Filename(time.Now(), filenameSuffix), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
}

func Filename(t time.Time, suffix string) string {
	return filepath.Join(LogDir, fmt.Sprintf("%s%s.log", t.Format("2006-01-02"), suffix))
}

func ensureDir() error {
	_, err := os.Stat(LogDir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(LogDir, os.ModePerm)
	}
	return err
}

var (
	LogDir = filepath.Join(filepath.Dir(os.Args[0]), "logs")
)
