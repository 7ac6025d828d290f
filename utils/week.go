package utils

// WeekDays is the canonical plan calendar. All schedule arithmetic indexes
// into this slice; plan keys and anchor days are expected in this spelling.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekDayIndex returns the position of day in the canonical week, or -1.
func WeekDayIndex(day string) int {
	for i, d := range WeekDays {
		if d == day {
			return i
		}
	}
	return -1
}

// ResolveCompensationDays enumerates the count weekdays that follow anchor,
// cyclically. An unrecognized anchor resolves as if it were WeekDays[0];
// existing callers send free-form day strings and rely on that leniency, so
// it is kept rather than turned into an error. Counts above 7 wrap and
// revisit days.
func ResolveCompensationDays(anchor string, count int) []string {
	i := WeekDayIndex(anchor)
	if i < 0 {
		i = 0
	}
	days := make([]string, 0, count)
	for k := 1; k <= count; k++ {
		days = append(days, WeekDays[(i+k)%len(WeekDays)])
	}
	return days
}
