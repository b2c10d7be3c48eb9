// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"sort"
	"time"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// ComputeDistribution breaks the year's watches down by calendar month and
// weekday and names the busiest of each. Ties keep whichever bucket was
// encountered first in the diary.
func ComputeDistribution(entries []models.DiaryEntry) models.ViewingDistribution {
	var dist models.ViewingDistribution

	type bucket struct {
		label string
		count int
	}
	monthOrder := make([]*bucket, 0, 12)
	monthSeen := make(map[int]*bucket, 12)
	dayOrder := make([]*bucket, 0, 7)
	daySeen := make(map[int]*bucket, 7)

	for i := range entries {
		t, err := time.Parse("2006-01-02", entries[i].Date)
		if err != nil {
			continue
		}

		month := int(t.Month())
		day := int(t.Weekday())
		dist.ByMonth[month]++
		dist.ByDay[day]++

		if b, ok := monthSeen[month]; ok {
			b.count++
		} else {
			b = &bucket{label: models.MonthNames[month], count: 1}
			monthSeen[month] = b
			monthOrder = append(monthOrder, b)
		}
		if b, ok := daySeen[day]; ok {
			b.count++
		} else {
			b = &bucket{label: models.DayNames[day], count: 1}
			daySeen[day] = b
			dayOrder = append(dayOrder, b)
		}
	}

	sort.SliceStable(monthOrder, func(i, j int) bool {
		return monthOrder[i].count > monthOrder[j].count
	})
	sort.SliceStable(dayOrder, func(i, j int) bool {
		return dayOrder[i].count > dayOrder[j].count
	})

	if len(monthOrder) > 0 {
		dist.BusiestMonth = monthOrder[0].label
	}
	if len(dayOrder) > 0 {
		dist.BusiestDay = dayOrder[0].label
	}

	return dist
}
