package report

import (
	"time"

	"github.com/clinilab/clinilab/internal/domain/order"
	"github.com/clinilab/clinilab/internal/domain/visit"
)

// Stats is the aggregate block of the report. It is deliberately scoped to
// the invocation's calendar day, not the requested range: the matrix answers
// "what happened in the range", the stats answer "how is today going".
type Stats struct {
	TodayPatients int     `json:"todayPatients"`
	TodayTests    int     `json:"todayTests"`
	TodayRevenue  float64 `json:"todayRevenue"`
	Growth        float64 `json:"growth"`
}

// computeStats aggregates over the joined data. ordersByVisit is keyed by
// position in visits.
//
// Test counting differs from the matrix: a package item counts one per
// member (embedded count, else the looked-up definition's member count,
// else 1), an individual item always counts 1, resolution success is
// irrelevant. Revenue sums Order.TotalAmount verbatim per order; cancelled
// orders are not excluded, and an order reachable through both linkage
// schemes is summed each time it appears. Growth is today's revenue against
// yesterday's, as a percentage, over the same joined data.
func computeStats(visits []*visit.WithPatient, ordersByVisit [][]*order.Order, now time.Time, loc *time.Location, ref *RefData) Stats {
	dayStart := startOfDay(now.In(loc))
	dayEnd := dayStart.AddDate(0, 0, 1)
	prevStart := dayStart.AddDate(0, 0, -1)

	var s Stats
	var prevRevenue float64

	for i, v := range visits {
		vd := v.EffectiveDateIn(loc).In(loc)
		if !vd.Before(dayStart) && vd.Before(dayEnd) {
			s.TodayPatients++
		}
		for _, o := range ordersByVisit[i] {
			od := o.OrderDate.In(loc)
			switch {
			case !od.Before(dayStart) && od.Before(dayEnd):
				s.TodayRevenue += o.TotalAmount
				for _, item := range o.Items {
					s.TodayTests += itemTestCount(item, ref)
				}
			case !od.Before(prevStart) && od.Before(dayStart):
				prevRevenue += o.TotalAmount
			}
		}
	}

	if prevRevenue > 0 {
		s.Growth = (s.TodayRevenue - prevRevenue) / prevRevenue * 100
	}
	return s
}

// itemTestCount applies the package-expansion count law.
func itemTestCount(item order.LineItem, ref *RefData) int {
	if !item.IsPackage() {
		return 1
	}
	if n := len(item.EmbeddedMembers); n > 0 {
		return n
	}
	if item.PackageRef != nil {
		if def := ref.FindPackage(item.PackageRef.ID, item.PackageRef.Code, item.PackageRef.Name); def != nil {
			if n := len(def.MemberTestIDs); n > 0 {
				return n
			}
		}
	}
	return 1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
