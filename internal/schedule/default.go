package schedule

import "masters-league-service/internal/domain"

// defaultTable is the 13-week schedule for a 10-team league served when no
// schedule file exists. Preserved verbatim from the original season setup the
// dashboard was built against; note week 9 lists team 10 twice and omits
// team 9, which differs from what Generate would produce.
var defaultTable = domain.Schedule{
	"1":  {{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
	"2":  {{1, 3}, {2, 5}, {4, 7}, {6, 9}, {8, 10}},
	"3":  {{1, 4}, {2, 6}, {3, 8}, {5, 9}, {7, 10}},
	"4":  {{1, 5}, {2, 7}, {3, 9}, {4, 6}, {8, 10}},
	"5":  {{1, 6}, {2, 8}, {3, 10}, {4, 5}, {7, 9}},
	"6":  {{1, 7}, {2, 9}, {3, 5}, {4, 8}, {6, 10}},
	"7":  {{1, 8}, {2, 10}, {3, 6}, {4, 9}, {5, 7}},
	"8":  {{1, 9}, {2, 4}, {3, 7}, {5, 10}, {6, 8}},
	"9":  {{1, 10}, {2, 3}, {4, 10}, {5, 8}, {6, 7}},
	"10": {{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
	"11": {{1, 3}, {2, 5}, {4, 7}, {6, 9}, {8, 10}},
	"12": {{1, 4}, {2, 6}, {3, 8}, {5, 9}, {7, 10}},
	"13": {{1, 5}, {2, 7}, {3, 9}, {4, 6}, {8, 10}},
}

// Default returns a fresh copy of the built-in schedule so callers can mutate
// the result without touching the shared table.
func Default() domain.Schedule {
	out := make(domain.Schedule, len(defaultTable))
	for week, pairs := range defaultTable {
		copied := make([][2]int, len(pairs))
		copy(copied, pairs)
		out[week] = copied
	}
	return out
}
