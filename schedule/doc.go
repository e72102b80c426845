// Copyright © 2025 The Gotheme Project.

/*
Package schedule implements the daily time window that drives automatic
light/dark switching. A Window is active from its start time through midnight
to its end time, so an overnight window such as 18:00:00 - 06:00:00 needs no
special handling.
*/
package schedule
