// Copyright © 2025 The Gotheme Project.

package schedule

type (
	// Window is a daily span of time, active from Start up to but excluding End.
	Window struct {
		Start TimeOfDay
		End   TimeOfDay
	}
)

// NewWindow builds a window from the hours and minutes of its endpoints.
func NewWindow(startH, startM, endH, endM int) (Window, error) {
	start, err := At(startH, startM)
	if err != nil {
		return Window{}, err
	}
	end, err := At(endH, endM)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

// Contains reports whether now falls inside the window.
//
// The test is now >= Start || now < End, which wraps past midnight when
// Start is after End. With Start at or before End every time of day is
// inside, as any time is either not before Start or before End. Stored
// configurations rely on this so it is kept as is.
func (w Window) Contains(now TimeOfDay) bool {
	return !now.Before(w.Start) || now.Before(w.End)
}

// Overnight reports whether the window wraps past midnight.
func (w Window) Overnight() bool {
	return w.End.Before(w.Start)
}

// WithStart returns the window with its start moved to h:m.
func (w Window) WithStart(h, m int) (Window, error) {
	start, err := At(h, m)
	if err != nil {
		return w, err
	}
	w.Start = start
	return w, nil
}

// WithEnd returns the window with its end moved to h:m.
func (w Window) WithEnd(h, m int) (Window, error) {
	end, err := At(h, m)
	if err != nil {
		return w, err
	}
	w.End = end
	return w, nil
}

// String formats the window as "HH:MM:SS - HH:MM:SS".
func (w Window) String() string {
	return w.Start.String() + " - " + w.End.String()
}
