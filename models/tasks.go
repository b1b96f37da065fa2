package models

// WarmPayload is the payload of the availability cache warm task, enqueued
// by the schedule CRUD layer after an edit so the next availability query
// hits a fresh cache.
type WarmPayload struct {
	ScheduleID string `json:"scheduleId"`
	Days       int    `json:"days"`
}
