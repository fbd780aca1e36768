package domain

import "time"

// ReportItem is one flattened sub-item captured in a daily snapshot.
// FurnitureID and SubFurnitureID are non-owning references: deleting the
// furniture later does not touch past reports.
type ReportItem struct {
	FurnitureID    int64  `json:"furnitureId"`
	SubFurnitureID string `json:"subFurnitureId"`
	ItemName       string `json:"itemName"`
	ItemNo         string `json:"itemNo"`
	InitialCount   int    `json:"initialCount"`
	Sold           int    `json:"sold"`
	Remaining      int    `json:"remaining"`
}

// FurnitureReport is a point-in-time inventory snapshot keyed by calendar day.
// At most one report exists per day. Invariant: remaining = initialCount - sold
// for every item after each sold-quantity update.
type FurnitureReport struct {
	ID          int64        `json:"id"`
	Date        time.Time    `json:"date"`
	ReportItems []ReportItem `json:"reportItems"`
	Signature   string       `json:"signature"`
	CreatedBy   *int64       `json:"createdBy,omitempty"`
}

// DayKey is the wire/storage form of the report's day-granularity key.
const DayKeyLayout = "2006-01-02"

// TruncateToDay drops the time-of-day component, keeping the UTC date.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
