package log

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/util"
	"github.com/spf13/afero"
)

// Retention is how long daily log files are kept.
const Retention = 7 * 24 * time.Hour

const dateLayout = "2006-01-02"

func fileName(day time.Time) string {
	return constant.Darcula + "-" + day.Format(dateLayout) + ".log"
}

// logDate extracts the day a log file was opened from its name.
func logDate(path string) (time.Time, bool) {
	stem := util.FileStem(path)
	raw, ok := strings.CutPrefix(stem, constant.Darcula+"-")
	if !ok {
		return time.Time{}, false
	}

	day, err := time.ParseInLocation(dateLayout, raw, time.Local)
	return day, err == nil
}

// Prune removes log files in dir opened more than Retention before now.
// Files not named like daily logs are left alone. It returns the number of removed files.
func Prune(dir string, now time.Time) (int, error) {
	var removed int
	cutoff := now.Add(-Retention)

	err := afero.Walk(filesystem.API().Fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		if day, ok := logDate(path); ok && day.Before(cutoff) {
			if err := filesystem.API().Remove(path); err != nil {
				return err
			}
			removed++
		}

		return nil
	})

	return removed, err
}
