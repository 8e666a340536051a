package models

import (
	"strconv"
	"time"
)

// Statistics tracks menu clicks per category. Map keys are category ids as
// strings; DailyClicks is keyed by day (YYYY-MM-DD) first.
type Statistics struct {
	CategoryClicks map[string]*CategoryClicks            `json:"categoryClicks" bson:"categoryClicks"`
	DailyClicks    map[string]map[string]*DailyCategoryClicks `json:"dailyClicks" bson:"dailyClicks"`
}

type CategoryClicks struct {
	Name        string     `json:"name" bson:"name"`
	TotalClicks int        `json:"totalClicks" bson:"totalClicks"`
	LastClicked *time.Time `json:"lastClicked" bson:"lastClicked"`
}

type DailyCategoryClicks struct {
	Name   string `json:"name" bson:"name"`
	Clicks int    `json:"clicks" bson:"clicks"`
}

func NewStatistics() *Statistics {
	return &Statistics{
		CategoryClicks: make(map[string]*CategoryClicks),
		DailyClicks:    make(map[string]map[string]*DailyCategoryClicks),
	}
}

// Track bumps the total and daily counters for one category click.
func (s *Statistics) Track(categoryID int, categoryName string, at time.Time) {
	key := strconv.Itoa(categoryID)
	if s.CategoryClicks == nil {
		s.CategoryClicks = make(map[string]*CategoryClicks)
	}
	if s.DailyClicks == nil {
		s.DailyClicks = make(map[string]map[string]*DailyCategoryClicks)
	}

	total, ok := s.CategoryClicks[key]
	if !ok {
		total = &CategoryClicks{Name: categoryName}
		s.CategoryClicks[key] = total
	}
	total.TotalClicks++
	clicked := at
	total.LastClicked = &clicked

	day := at.Format("2006-01-02")
	if s.DailyClicks[day] == nil {
		s.DailyClicks[day] = make(map[string]*DailyCategoryClicks)
	}
	daily, ok := s.DailyClicks[day][key]
	if !ok {
		daily = &DailyCategoryClicks{Name: categoryName}
		s.DailyClicks[day][key] = daily
	}
	daily.Clicks++
}
