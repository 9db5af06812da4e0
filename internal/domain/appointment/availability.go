package appointment

// Slot is a fixed-size candidate booking window, reported but never persisted.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// FreeSlots walks the working window in granularity steps and emits every
// candidate slot that fits inside the window and overlaps no booked range.
// Candidates are independent of each other; the result is ascending by start.
func FreeSlots(booked []TimeRange, w WorkingHours) []Slot {
	step := MinuteOfDay(w.SlotGranularityMinutes)

	slots := []Slot{}
	for cur := w.WindowStart; cur+step <= w.WindowEnd; cur += step {
		cand := TimeRange{Start: cur, End: cur + step}

		free := true
		for _, b := range booked {
			if cand.Overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, Slot{
				StartTime: cand.Start.String(),
				EndTime:   cand.End.String(),
			})
		}
	}

	return slots
}

// SlotsFromRanges renders booked ranges in the wire shape used by the
// conflict payload.
func SlotsFromRanges(ranges []TimeRange) []Slot {
	out := make([]Slot, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, Slot{
			StartTime: r.Start.String(),
			EndTime:   r.End.String(),
		})
	}
	return out
}
