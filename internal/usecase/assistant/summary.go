package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
)

// StatusCounts buckets flights by status category.
type StatusCounts struct {
	Delayed   int
	InFlight  int
	Scheduled int
	Canceled  int
	Completed int
}

// CountStatuses classifies every flight's status.
func CountStatuses(flights []entity.Flight) StatusCounts {
	var c StatusCounts
	for _, f := range flights {
		switch f.Category() {
		case entity.StatusDelayed:
			c.Delayed++
		case entity.StatusInFlight:
			c.InFlight++
		case entity.StatusCanceled:
			c.Canceled++
		case entity.StatusCompleted:
			c.Completed++
		default:
			c.Scheduled++
		}
	}
	return c
}

// Ranked is a name with its number of occurrences.
type Ranked struct {
	Name  string
	Count int
}

func (r Ranked) String() string {
	return fmt.Sprintf("%s (%d)", r.Name, r.Count)
}

// TopAirlines ranks companies by flight count. Ties keep the order of first
// appearance.
func TopAirlines(flights []entity.Flight, n int) []Ranked {
	index := make(map[string]int)
	var ranked []Ranked
	for _, f := range flights {
		name := strings.TrimSpace(f.Companhia)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(ranked)
			index[name] = i
			ranked = append(ranked, Ranked{Name: name})
		}
		ranked[i].Count++
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	return head(ranked, n)
}

// TopAirports ranks "{city}/{state}" pairs over origins and destinations.
// Ties are broken alphabetically.
func TopAirports(flights []entity.Flight, n int) ([]Ranked, int) {
	counts := make(map[string]int)
	add := func(city, state string) {
		key := strings.TrimSpace(city) + "/" + strings.TrimSpace(state)
		if key == "/" {
			return
		}
		counts[key]++
	}
	for _, f := range flights {
		add(f.OrigemCidade, f.OrigemEstado)
		add(f.DestinoCidade, f.DestinoEstado)
	}

	ranked := make([]Ranked, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, Ranked{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return head(ranked, n), len(counts)
}

// JoinRanked renders "A (3), B (1)".
func JoinRanked(r []Ranked) string {
	parts := make([]string, len(r))
	for i, item := range r {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

// SortBySchedule orders flights by scheduled time, oldest first. Flights
// with an unparseable time keep their relative order at the end.
func SortBySchedule(flights []entity.Flight) []entity.Flight {
	type keyed struct {
		f  entity.Flight
		at time.Time
		ok bool
	}
	rows := make([]keyed, len(flights))
	for i, f := range flights {
		at, ok := f.ScheduledAt()
		rows[i] = keyed{f: f, at: at, ok: ok}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ok != rows[j].ok {
			return rows[i].ok
		}
		return rows[i].ok && rows[i].at.Before(rows[j].at)
	})
	out := make([]entity.Flight, len(rows))
	for i, r := range rows {
		out[i] = r.f
	}
	return out
}

// Upcoming returns flights scheduled at or after now, soonest first.
func Upcoming(flights []entity.Flight, now time.Time) []entity.Flight {
	var out []entity.Flight
	for _, f := range flights {
		if at, ok := f.ScheduledAt(); ok && !at.Before(now) {
			out = append(out, f)
		}
	}
	return SortBySchedule(out)
}

// FilterByCategory keeps flights whose status falls in cat.
func FilterByCategory(flights []entity.Flight, cat entity.StatusCategory) []entity.Flight {
	var out []entity.Flight
	for _, f := range flights {
		if f.Category() == cat {
			out = append(out, f)
		}
	}
	return out
}

// FilterByAirline keeps numbered flights of the named company, ignoring
// case and accents.
func FilterByAirline(flights []entity.Flight, airline string) []entity.Flight {
	want := utils.Normalize(airline)
	var out []entity.Flight
	for _, f := range flights {
		if f.Key() != "" && utils.Normalize(f.Companhia) == want {
			out = append(out, f)
		}
	}
	return out
}

// FindByNumber looks a flight up by its upper-cased number.
func FindByNumber(flights []entity.Flight, number string) (entity.Flight, bool) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return entity.Flight{}, false
	}
	for _, f := range flights {
		if f.Key() == number {
			return f, true
		}
	}
	return entity.Flight{}, false
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
