package domain

// Activity is one entry in a day's timetable. Start is minutes of day;
// DurationMin is 0 for point-in-time deadline markers.
type Activity struct {
	Start       int // minutes of day
	Label       string
	Category    ActivityCategory
	DurationMin int
	CourseRef   string   // optional course code
	Priority    Priority // optional, set for deadline markers and reviews
}

// Fixed reports whether the activity is anchored (see ActivityCategory.Fixed).
func (a Activity) Fixed() bool {
	return a.Category.Fixed()
}

// DaySchedule is the ordered timetable for one calendar date. Activities are
// kept in non-decreasing Start order, fixed entries before flexible ones at
// equal times.
type DaySchedule struct {
	Date       string // YYYY-MM-DD
	Weekend    bool
	Activities []Activity
}

// Fixed returns the fixed-category activities in schedule order.
func (d *DaySchedule) Fixed() []Activity {
	var out []Activity
	for _, a := range d.Activities {
		if a.Fixed() {
			out = append(out, a)
		}
	}
	return out
}

// CountCategory returns how many activities carry the given category.
func (d *DaySchedule) CountCategory(c ActivityCategory) int {
	n := 0
	for _, a := range d.Activities {
		if a.Category == c {
			n++
		}
	}
	return n
}
