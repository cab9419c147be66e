package pipeline

import (
	"fmt"
	"math"
)

// srtTimestamp renders a frame index as an SRT timestamp
// (HH:MM:SS,mmm) at the given frame rate.
func srtTimestamp(frame int, fps float64) string {
	seconds := float64(frame) / fps
	milliseconds := int((seconds - math.Trunc(seconds)) * 1000)
	hours := int(seconds / 3600)
	minutes := int((seconds - 3600*float64(hours)) / 60)
	secondsDisp := seconds - (float64(minutes)*60 + float64(hours)*3600)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secondsDisp), milliseconds)
}

// dropFrameTimecode renders a frame index as 29.97 fps SMPTE drop-frame
// timecode (HH:MM:SS;FF): two frame numbers are skipped at the start of
// every minute except each tenth minute, re-synchronizing the counter
// with wall-clock time.
func dropFrameTimecode(frames int) string {
	fn := frames + 18*(frames/17982) + 2*max((frames%17982-2)/1798, 0)
	return fmt.Sprintf("%02d:%02d:%02d;%02d",
		fn/108000%24, fn/1800%60, fn/30%60, fn%30)
}
