package iordf

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// elapsed formats a duration as seconds up to one minute, and as
// minutes with one decimal after that.
func elapsed(d time.Duration) string {
	secs := d.Seconds()
	if secs <= 60 {
		return fmt.Sprintf("%.0f seconds elapsed", secs)
	}
	return fmt.Sprintf("%.1f minutes elapsed", secs/60)
}

func commaInt(i int) string {
	return humanize.Comma(int64(i))
}
