package schedule

import (
	"strconv"

	"masters-league-service/internal/domain"
)

// byeSlot marks the placeholder appended when the team count is odd. Pairings
// that include it are dropped, leaving that team without an opponent for the
// week. ESPN team ids are positive, so -1 can never collide.
const byeSlot = -1

// Generate builds a circle-method round-robin schedule: the first team stays
// fixed while the remaining teams rotate one position per week, so the full
// pairing cycle repeats every n-1 weeks (n includes the bye slot). The result
// is deterministic with respect to the input order; callers wanting a
// reproducible schedule must pass a stable ordering.
func Generate(teamIDs []int, weeks int) domain.Schedule {
	teams := make([]int, len(teamIDs))
	copy(teams, teamIDs)
	if len(teams)%2 == 1 {
		teams = append(teams, byeSlot)
	}

	n := len(teams)
	sched := make(domain.Schedule, weeks)
	for week := 1; week <= weeks; week++ {
		matchups := make([][2]int, 0, n/2)
		if n >= 2 {
			rotated := rotate(teams, (week-1)%(n-1))
			for i := 0; i < n/2; i++ {
				t1, t2 := rotated[i], rotated[n-1-i]
				if t1 == byeSlot || t2 == byeSlot {
					continue
				}
				matchups = append(matchups, [2]int{t1, t2})
			}
		}
		sched[strconv.Itoa(week)] = matchups
	}
	return sched
}

// rotate keeps teams[0] fixed and shifts the rest right by offset positions.
func rotate(teams []int, offset int) []int {
	if offset == 0 {
		return teams
	}
	rest := teams[1:]
	out := make([]int, 0, len(teams))
	out = append(out, teams[0])
	out = append(out, rest[len(rest)-offset:]...)
	out = append(out, rest[:len(rest)-offset]...)
	return out
}
